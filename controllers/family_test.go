package controllers

import (
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
)

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		name     string
		fullname string
		dob      string
		want     string
	}{
		{"simple name", "Ravi Kumar", "1990-05-15", "ravi900515"},
		{"single word", "Priya", "2001-12-03", "priya011203"},
		{"extra spaces", "  Anil   Sharma  ", "1985-01-31", "anil850131"},
		{"mixed case", "SUNITA devi", "1999-08-09", "sunita990809"},
		{"empty name", "", "1990-05-15", ""},
		{"bad date", "Ravi Kumar", "15-05-1990", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateUsername(tt.fullname, tt.dob); got != tt.want {
				t.Errorf("generateUsername(%q, %q) = %q, want %q", tt.fullname, tt.dob, got, tt.want)
			}
		})
	}
}

func completeProfileRequest() memberProfileRequest {
	return memberProfileRequest{
		UserID:      "507f1f77bcf86cd799439011",
		FullName:    "Ravi Kumar",
		FatherID:    "U0000001",
		Mother:      "Sunita Devi",
		Gender:      "male",
		DOB:         "1990-05-15",
		BloodGroup:  "B+",
		Username:    "ravi900515",
		Password:    "secret",
		HealthIssue: "none",
		IsLive:      "yes",
		Contact:     models.Contact{Email: "ravi@example.com"},
	}
}

func TestMemberProfileMissingFields(t *testing.T) {
	full := completeProfileRequest()
	if full.missingFields(true) {
		t.Error("complete request reported missing fields")
	}

	noPassword := completeProfileRequest()
	noPassword.Password = ""
	if noPassword.missingFields(false) {
		t.Error("password should not be required for profile edits")
	}
	if !noPassword.missingFields(true) {
		t.Error("password should be required for profile completion")
	}

	noEmail := completeProfileRequest()
	noEmail.Contact.Email = ""
	if !noEmail.missingFields(false) {
		t.Error("missing contact email not detected")
	}

	noMother := completeProfileRequest()
	noMother.Mother = ""
	if !noMother.missingFields(false) {
		t.Error("missing mother name not detected")
	}
}
