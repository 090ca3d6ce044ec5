package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func validContact() models.Contact {
	return models.Contact{
		Email:    "poster@example.com",
		MobileNo: models.Mobile{Code: "+91", Number: "9876543210"},
	}
}

func TestValidatePostingContact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Contact)
		wantMsg string
	}{
		{"valid", func(c *models.Contact) {}, ""},
		{"missing code", func(c *models.Contact) { c.MobileNo.Code = "" }, "Enter a valid mobile number"},
		{"short number", func(c *models.Contact) { c.MobileNo.Number = "12345" }, "Enter a valid mobile number"},
		{"letters in number", func(c *models.Contact) { c.MobileNo.Number = "98765abc10" }, "Enter a valid mobile number"},
		{"bad email", func(c *models.Contact) { c.Email = "not-an-email" }, "Enter a valid email"},
		{"empty email", func(c *models.Contact) { c.Email = "" }, "Enter a valid email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)
			if got := validatePostingContact(c); got != tt.wantMsg {
				t.Errorf("validatePostingContact() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCreateJobOpeningUnauthenticated(t *testing.T) {
	jc := &JobController{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/create-job-opening", nil)
	rec := httptest.NewRecorder()

	jc.CreateJobOpening(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCreateJobOpeningRejectsMissingFields(t *testing.T) {
	jc := &JobController{}

	payload := jobRequest{Title: "Cook", Contact: validContact()} // no description or location
	req := authedRequest(http.MethodPost, "/api/user/create-job-opening",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	jc.CreateJobOpening(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Missing required job fields" {
		t.Errorf("message = %q, want missing-fields error", body["message"])
	}
}

func TestUpdateJobStatusRequiresBoolean(t *testing.T) {
	jc := &JobController{}

	payload := map[string]interface{}{"jobId": "507f1f77bcf86cd799439011"}
	req := authedRequest(http.MethodPost, "/api/user/update-job-status",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	jc.UpdateJobStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "isOpen must be boolean or true/false." {
		t.Errorf("message = %q, want isOpen type error", body["message"])
	}
}
