package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestUsersForbiddenForUserRole(t *testing.T) {
	token := userToken(t)

	status, body := doJSON(t, http.MethodGet, "/api/v1/users", nil, token)

	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (body=%s)", status, body)
	}
}

func TestUserCreateAndDelete(t *testing.T) {
	token := adminToken(t)
	email := uniqueEmail("blackbox")

	payload := map[string]string{
		"name":     "Blackbox User",
		"email":    email,
		"password": "Secret123!",
		"role":     "user",
		"status":   "active",
	}
	status, body := doJSON(t, http.MethodPost, "/api/v1/users", payload, token)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("create user failed: status=%d error=%q", status, errEnv.Error)
	}

	var created struct {
		Message string      `json:"message"`
		User    userPayload `json:"user"`
	}
	decodeBody(t, body, &created)
	if created.User.Email != email {
		t.Fatalf("expected created user email %q, got %q", email, created.User.Email)
	}

	// Duplicate email conflicts.
	status, body = doJSON(t, http.MethodPost, "/api/v1/users", payload, token)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d (body=%s)", status, body)
	}

	// Soft delete.
	status, body = doJSON(t, http.MethodDelete, "/api/v1/users/"+created.User.ID, nil, token)
	if status != http.StatusOK && status != http.StatusNoContent {
		t.Fatalf("delete user failed: status=%d (body=%s)", status, body)
	}

	// Deleted accounts cannot request codes.
	status, body = doJSON(t, http.MethodPost, "/otp/send", map[string]string{"email": email}, "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted user, got %d (body=%s)", status, body)
	}
}
