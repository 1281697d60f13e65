package handler

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		seed           bool // create john@example.com first
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid input",
			body:           `{"username":"johndoe","email":"john@example.com","password":"secret123"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           `{"username":"other","email":"john@example.com","password":"secret456"}`,
			seed:           true,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User with this email already exists",
		},
		{
			name:           "username too short",
			body:           `{"username":"ab","email":"valid@example.com","password":"password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username must be at least 3 characters long",
		},
		{
			name:           "invalid email",
			body:           `{"username":"validuser","email":"invalid-email","password":"password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Valid email address is required",
		},
		{
			name:           "password too short",
			body:           `{"username":"validuser","email":"valid@example.com","password":"12345"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			defer env.cleanup()

			if tt.seed {
				env.createUser(t, "johndoe", "john@example.com", "secret123")
			}

			w := env.makeRequest(t, http.MethodPost, "/api/users", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d\nBody: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus != http.StatusCreated {
				errResp := parseErrorResponse(t, w)
				if errResp.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, errResp.Message)
				}
				if errResp.Status != tt.expectedStatus {
					t.Errorf("expected status field %d, got %d", tt.expectedStatus, errResp.Status)
				}
				return
			}

			fields := rawFields(t, w)
			if _, ok := fields["password"]; ok {
				t.Error("password field present in create response")
			}
			if fields["username"] != "johndoe" {
				t.Errorf("unexpected username %v", fields["username"])
			}
			if id, ok := fields["id"].(float64); !ok || id <= 0 {
				t.Errorf("expected a fresh positive id, got %v", fields["id"])
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	created := env.createUser(t, "johndoe", "john@example.com", "secret123")

	// Round trip: same username/email, no password field
	w := env.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	fields := rawFields(t, w)
	if fields["username"] != "johndoe" || fields["email"] != "john@example.com" {
		t.Errorf("round trip mismatch: %v", fields)
	}
	if _, ok := fields["password"]; ok {
		t.Error("password field present in get response")
	}
}

func TestGetUserInvalidID(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/api/users/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	errResp := parseErrorResponse(t, w)
	if errResp.Message != "Invalid ID format" {
		t.Errorf("unexpected message %q", errResp.Message)
	}
	if errResp.Status != http.StatusBadRequest {
		t.Errorf("unexpected status field %d", errResp.Status)
	}
}

func TestGetUserNotFound(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/api/users/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	errResp := parseErrorResponse(t, w)
	if errResp.Message != "User not found" {
		t.Errorf("unexpected message %q", errResp.Message)
	}
}

func TestListUsers(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/api/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}

	env.createUser(t, "johndoe", "john@example.com", "secret123")
	env.createUser(t, "janedoe", "jane@example.com", "secret456")

	w = env.makeRequest(t, http.MethodGet, "/api/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	users := parseUserListResponse(t, w)
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "invalid id",
			path:           "/api/users/abc",
			body:           `{"username":"johnny"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid ID format",
		},
		{
			name:           "empty update",
			path:           "", // filled with created id
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "No data provided for update",
		},
		{
			name:           "unknown user",
			path:           "/api/users/9999",
			body:           `{"username":"johnny"}`,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name:           "partial update",
			path:           "",
			body:           `{"username":"johnny"}`,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			defer env.cleanup()

			created := env.createUser(t, "johndoe", "john@example.com", "secret123")

			path := tt.path
			if path == "" {
				path = fmt.Sprintf("/api/users/%d", created.ID)
			}

			w := env.makeRequest(t, http.MethodPut, path, tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d\nBody: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				errResp := parseErrorResponse(t, w)
				if errResp.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, errResp.Message)
				}
				return
			}

			updated := parseUserResponse(t, w)
			if updated.Username != "johnny" {
				t.Errorf("expected username johnny, got %q", updated.Username)
			}
			if updated.Email != "john@example.com" {
				t.Errorf("unsupplied email was modified: %q", updated.Email)
			}
		})
	}
}

func TestDeleteUserFlow(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	created := env.createUser(t, "johndoe", "john@example.com", "secret123")
	path := fmt.Sprintf("/api/users/%d", created.ID)

	w := env.makeRequest(t, http.MethodDelete, path, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	fields := rawFields(t, w)
	if fields["message"] != "User deleted successfully" {
		t.Errorf("unexpected body %v", fields)
	}

	// Subsequent lookups and deletes report the user as gone
	w = env.makeRequest(t, http.MethodGet, path, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", w.Code)
	}
	if msg := parseErrorResponse(t, w).Message; msg != "User not found" {
		t.Errorf("unexpected message %q", msg)
	}

	w = env.makeRequest(t, http.MethodDelete, path, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for repeated delete, got %d", w.Code)
	}
}

func TestDeleteUserInvalidID(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodDelete, "/api/users/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if msg := parseErrorResponse(t, w).Message; msg != "Invalid ID format" {
		t.Errorf("unexpected message %q", msg)
	}
}
