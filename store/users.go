package store

import (
	"lms/models"
)

func (s *Store) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return ErrDuplicate
	}
	return s.db.Create(user).Error
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(role string) ([]models.User, error) {
	var users []models.User
	db := s.db.Order("id")
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser merges the given fields into the user. Keys are Go struct
// field names. An empty patch is a no-op.
func (s *Store) UpdateUser(id uint, fields map[string]interface{}) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return user, nil
	}
	if username, ok := fields["Username"].(string); ok {
		var existing models.User
		if err := s.db.Where("username = ? AND id <> ?", username, id).First(&existing).Error; err == nil {
			return nil, ErrDuplicate
		}
	}
	if err := s.db.Model(user).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

func (s *Store) DeleteUser(id uint) (bool, error) {
	res := s.db.Delete(&models.User{}, id)
	return res.RowsAffected > 0, res.Error
}
