package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func TestParseAdDates(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		until   string
		wantMsg string
	}{
		{"valid window", "2026-09-01", "2026-09-30", ""},
		{"bad from date", "09/01/2026", "2026-09-30", "Invalid Valid From date"},
		{"bad until date", "2026-09-01", "September 30", "Invalid Valid Until date"},
		{"until before from", "2026-09-30", "2026-09-01", "Valid Until date must be after Valid From date"},
		{"equal dates", "2026-09-01", "2026-09-01", "Valid Until date must be after Valid From date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, until, msg := parseAdDates(tt.from, tt.until)
			if msg != tt.wantMsg {
				t.Fatalf("parseAdDates() msg = %q, want %q", msg, tt.wantMsg)
			}
			if msg == "" && !from.Before(until) {
				t.Errorf("parsed window [%v, %v] is not ordered", from, until)
			}
		})
	}
}

func TestAddAdvertisementRejectsPastStart(t *testing.T) {
	ac := &AdvertisementController{}

	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	nextMonth := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	payload := adRequest{
		Title:       "Shop opening",
		Description: "New grocery shop",
		ValidFrom:   lastWeek,
		ValidUntil:  nextMonth,
		Contact:     validContact(),
	}
	req := authedRequest(http.MethodPost, "/api/user/add-advertisement",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	ac.AddAdvertisement(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Valid From date cannot be in the past" {
		t.Errorf("message = %q, want past-start error", body["message"])
	}
}

func TestAddAdvertisementRejectsMissingFields(t *testing.T) {
	ac := &AdvertisementController{}

	payload := adRequest{Title: "Shop opening", Contact: validContact()}
	req := authedRequest(http.MethodPost, "/api/user/add-advertisement",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	ac.AddAdvertisement(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Missing required advertisement fields" {
		t.Errorf("message = %q, want missing-fields error", body["message"])
	}
}
