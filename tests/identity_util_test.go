package tests

import (
	"net/http"
	"testing"
)

const (
	adminEmail    = "admin@inventory.com"
	adminPassword = "Secret123!"

	userEmail    = "user@inventory.com"
	userPassword = "Secret123!"
)

type userPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

func login(t *testing.T, email, password string) loginResponse {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/login", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("login failed: status=%d error=%q", status, errEnv.Error)
	}

	var resp loginResponse
	decodeBody(t, body, &resp)

	return resp
}

func adminToken(t *testing.T) string {
	t.Helper()

	resp := login(t, adminEmail, adminPassword)
	if resp.Token == "" {
		t.Fatal("missing admin token")
	}

	return resp.Token
}

func userToken(t *testing.T) string {
	t.Helper()

	resp := login(t, userEmail, userPassword)
	if resp.Token == "" {
		t.Fatal("missing user token")
	}

	return resp.Token
}
