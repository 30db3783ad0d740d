package routers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lms/config"
	"lms/database"
	"lms/routers"
	"lms/store"
)

type env struct {
	t   *testing.T
	app *fiber.App
	st  *store.Store
}

func newTestEnv(t *testing.T) *env {
	t.Helper()

	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBName:        "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		JWTKey:        "test-secret",
		SaltRound:     bcrypt.MinCost,
		UploadDir:     t.TempDir(),
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@test.local",
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	st := store.New(db)
	app := fiber.New()
	routers.Setup(app, st, cfg)

	return &env{t: t, app: app, st: st}
}

// request drives the app with a JSON request and decodes the envelope.
func (e *env) request(method, path, token string, body interface{}) (int, map[string]interface{}) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)

	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(e.t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func dataList(body map[string]interface{}) []interface{} {
	d, _ := body["data"].([]interface{})
	return d
}

func id(record map[string]interface{}) uint {
	return uint(record["ID"].(float64))
}

func (e *env) login(username, password string) string {
	e.t.Helper()
	code, body := e.request("POST", "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(e.t, http.StatusOK, code)
	return data(body)["token"].(string)
}

// createUser provisions an account of the given role through the admin
// endpoint and returns its id plus a logged-in token.
func (e *env) createUser(adminToken, username, role string) (uint, string) {
	e.t.Helper()
	code, body := e.request("POST", "/api/users", adminToken, fiber.Map{
		"username":  username,
		"password":  "pass1234",
		"email":     username + "@test.local",
		"firstName": "Test",
		"lastName":  "User",
		"role":      role,
	})
	require.Equal(e.t, http.StatusCreated, code)
	return id(data(body)), e.login(username, "pass1234")
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	e := newTestEnv(t)

	for _, path := range []string{
		"/api/courses", "/api/users", "/api/enrollments",
		"/api/assignments", "/api/submissions", "/api/announcements",
		"/api/analytics/users", "/api/auth/session",
	} {
		code, _ := e.request("GET", path, "", nil)
		require.Equal(t, http.StatusUnauthorized, code, path)
	}
}

func TestRegisterLoginSession(t *testing.T) {
	e := newTestEnv(t)

	code, body := e.request("POST", "/api/auth/register", "", fiber.Map{
		"username":  "jdoe",
		"password":  "secret123",
		"email":     "jdoe@test.local",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	require.Equal(t, http.StatusCreated, code)
	user := data(body)
	require.Equal(t, "jdoe", user["username"])
	// self-registration is always a student account
	require.Equal(t, "student", user["role"])
	_, leaked := user["password"]
	require.False(t, leaked)

	token := e.login("jdoe", "secret123")

	code, body = e.request("GET", "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "jdoe", data(body)["username"])
	_, leaked = data(body)["password"]
	require.False(t, leaked)

	code, _ = e.request("POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	code, body := e.request("POST", "/api/auth/register", "", fiber.Map{
		"username": "x",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, code)
	errs := data(body)
	require.Contains(t, errs, "username")
	require.Contains(t, errs, "password")
	require.Contains(t, errs, "email")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := newTestEnv(t)

	payload := fiber.Map{
		"username":  "jdoe",
		"password":  "secret123",
		"email":     "jdoe@test.local",
		"firstName": "Jane",
		"lastName":  "Doe",
	}
	code, _ := e.request("POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, code)
	code, _ = e.request("POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, code)
}

func TestLoginBadCredentials(t *testing.T) {
	e := newTestEnv(t)

	code, _ := e.request("POST", "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.request("POST", "/api/auth/login", "", fiber.Map{
		"username": "ghost",
		"password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.login("admin", "admin123")
	e.createUser(adminToken, "prof", "faculty")

	code, body := e.request("GET", "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	users := dataList(body)
	require.NotEmpty(t, users)
	for _, u := range users {
		_, leaked := u.(map[string]interface{})["password"]
		require.False(t, leaked)
	}
}

func TestUserListScopedForNonAdmins(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.login("admin", "admin123")
	studentID, studentToken := e.createUser(adminToken, "stu", "student")
	e.createUser(adminToken, "stu2", "student")

	code, body := e.request("GET", "/api/users", studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	users := dataList(body)
	require.Len(t, users, 1)
	require.Equal(t, studentID, id(users[0].(map[string]interface{})))
}

func TestUserSelfUpdateCannotChangeRole(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.login("admin", "admin123")
	studentID, studentToken := e.createUser(adminToken, "stu", "student")
	otherID, _ := e.createUser(adminToken, "stu2", "student")

	code, body := e.request("PUT", "/api/users/"+itoa(studentID), studentToken, fiber.Map{
		"role":      "admin",
		"firstName": "Changed",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "student", data(body)["role"])
	require.Equal(t, "Changed", data(body)["firstName"])

	// another user's record is off limits either way
	code, _ = e.request("PUT", "/api/users/"+itoa(otherID), studentToken, fiber.Map{"firstName": "X"})
	require.Equal(t, http.StatusForbidden, code)
	code, _ = e.request("DELETE", "/api/users/"+itoa(otherID), studentToken, nil)
	require.Equal(t, http.StatusForbidden, code)

	// admins change any field on any user
	code, body = e.request("PUT", "/api/users/"+itoa(studentID), adminToken, fiber.Map{"role": "faculty"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "faculty", data(body)["role"])
}

func TestUpdateUserToTakenUsername(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.login("admin", "admin123")
	e.createUser(adminToken, "alice", "student")
	bobID, _ := e.createUser(adminToken, "bob", "student")

	code, _ := e.request("PUT", "/api/users/"+itoa(bobID), adminToken, fiber.Map{
		"username": "alice",
	})
	require.Equal(t, http.StatusConflict, code)

	// the rename never landed
	code, body := e.request("GET", "/api/users/"+itoa(bobID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "bob", data(body)["username"])
}

func TestUsernameFreedByDelete(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.login("admin", "admin123")

	payload := fiber.Map{
		"username":  "carol",
		"password":  "secret123",
		"email":     "carol@test.local",
		"firstName": "Carol",
		"lastName":  "Jones",
	}
	code, body := e.request("POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, code)
	carolID := id(data(body))

	code, _ = e.request("DELETE", "/api/users/"+itoa(carolID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	// once the account is gone the username may be registered again
	code, _ = e.request("POST", "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, code)
}

func itoa(v uint) string {
	return fmt.Sprint(v)
}
