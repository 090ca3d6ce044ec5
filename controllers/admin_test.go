package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func adminWithCreds(t *testing.T, email, password string) *AdminController {
	t.Helper()
	store := utils.NewAdminStore()
	if err := store.Add(email, password); err != nil {
		t.Fatalf("seed admin store: %v", err)
	}
	return &AdminController{Admins: store}
}

func TestAdminLogin(t *testing.T) {
	ac := adminWithCreds(t, "admin@sdpjss.org", "s3cret")

	payload := map[string]string{"email": "admin@sdpjss.org", "password": "s3cret"}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", jsonBody(t, payload))
	rec := httptest.NewRecorder()

	ac.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeEnvelope(t, rec)
	token, _ := body["atoken"].(string)
	if token == "" {
		t.Fatal("response has no atoken")
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Role != utils.RoleAdmin {
		t.Errorf("token role = %q, want %q", claims.Role, utils.RoleAdmin)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	ac := adminWithCreds(t, "admin@sdpjss.org", "s3cret")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@sdpjss.org", "wrong"},
		{"unknown email", "intruder@example.com", "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]string{"email": tt.email, "password": tt.password}
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", jsonBody(t, payload))
			rec := httptest.NewRecorder()

			ac.Login(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			body := decodeEnvelope(t, rec)
			if body["message"] != "Invalid Credentials" {
				t.Errorf("message = %q, want Invalid Credentials", body["message"])
			}
		})
	}
}

func TestUpdateUserStatusRejectsUnknownValue(t *testing.T) {
	ac := &AdminController{}

	payload := map[string]string{"userId": "507f1f77bcf86cd799439011", "isApproved": "banned"}
	req := authedRequest(http.MethodPost, "/api/admin/update-user-status",
		jsonBody(t, payload), "admin@sdpjss.org", utils.RoleAdmin)
	rec := httptest.NewRecorder()

	ac.UpdateUserStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Invalid status value" {
		t.Errorf("message = %q, want Invalid status value", body["message"])
	}
}
