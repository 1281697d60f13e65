package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jorism/userapi/internal/api/dto"
	"github.com/jorism/userapi/internal/core/service"
	"github.com/jorism/userapi/internal/infrastructure/sqlite"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := NewUserHandler(userService)

	// Setup gin router in test mode, routes only (no logging middleware)
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	{
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
	}

	return &testEnv{
		db:     db,
		router: router,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body
func (env *testEnv) makeRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createUser creates a user through the API and returns its response
func (env *testEnv) createUser(t *testing.T, username, email, password string) dto.UserResponse {
	t.Helper()

	body := `{"username":"` + username + `","email":"` + email + `","password":"` + password + `"}`
	w := env.makeRequest(t, http.MethodPost, "/api/users", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create user, status %d: %s", w.Code, w.Body.String())
	}
	return parseUserResponse(t, w)
}

// parseUserResponse parses the response body into UserResponse
func parseUserResponse(t *testing.T, w *httptest.ResponseRecorder) dto.UserResponse {
	t.Helper()

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseUserListResponse parses the response body into a list of users
func parseUserListResponse(t *testing.T, w *httptest.ResponseRecorder) []dto.UserResponse {
	t.Helper()

	var resp []dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// rawFields decodes the response body into a generic map to inspect keys
func rawFields(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var fields map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return fields
}
