package tests

import (
	"net/http"
	"testing"
)

func TestOTPSendUnknownUser(t *testing.T) {
	payload := map[string]string{"email": "nobody@example.com"}

	status, body := doJSON(t, http.MethodPost, "/otp/send", payload, "")

	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body=%s)", status, body)
	}
	errEnv := decodeError(t, body)
	if errEnv.Error != "User not found" {
		t.Fatalf("unexpected error message %q", errEnv.Error)
	}
}

func TestOTPSendInvalidEmail(t *testing.T) {
	payload := map[string]string{"email": "not-an-email"}

	status, body := doJSON(t, http.MethodPost, "/otp/send", payload, "")

	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (body=%s)", status, body)
	}
}

func TestOTPVerifyWrongCode(t *testing.T) {
	payload := map[string]string{
		"email": userEmail,
		"otp":   "000000",
	}

	status, body := doJSON(t, http.MethodPost, "/otp/verify", payload, "")

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", status, body)
	}
	errEnv := decodeError(t, body)
	if errEnv.Error != "Invalid or expired OTP" {
		t.Fatalf("unexpected error message %q", errEnv.Error)
	}
}

func TestOTPVerifyMalformedCode(t *testing.T) {
	payload := map[string]string{
		"email": userEmail,
		"otp":   "12ab",
	}

	status, body := doJSON(t, http.MethodPost, "/otp/verify", payload, "")

	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (body=%s)", status, body)
	}
}
