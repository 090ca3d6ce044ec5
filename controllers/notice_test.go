package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func validNoticeRequest() noticeRequest {
	return noticeRequest{
		Title:    "Durga Puja schedule",
		Message:  "Celebrations start on October 1st",
		Icon:     "calendar",
		Color:    "orange",
		Type:     "event",
		Author:   "Admin",
		Category: "festival",
	}
}

func TestNoticeRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*noticeRequest)
		want   string
	}{
		{"valid", func(r *noticeRequest) {}, ""},
		{"missing title", func(r *noticeRequest) { r.Title = "" }, "All fields are required"},
		{"missing author", func(r *noticeRequest) { r.Author = "" }, "All fields are required"},
		{"missing color", func(r *noticeRequest) { r.Color = "" }, "All fields are required"},
		{"unknown type", func(r *noticeRequest) { r.Type = "urgent" }, "Invalid notice type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validNoticeRequest()
			tt.mutate(&req)
			if got := req.validate(); got != tt.want {
				t.Errorf("validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddNoticeRejectsInvalidType(t *testing.T) {
	nc := &NoticeController{}

	payload := validNoticeRequest()
	payload.Type = "broadcast"
	req := authedRequest(http.MethodPost, "/api/admin/add-notice",
		jsonBody(t, payload), "admin@sdpjss.org", utils.RoleAdmin)
	rec := httptest.NewRecorder()

	nc.AddNotice(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Invalid notice type" {
		t.Errorf("message = %q, want invalid-type error", body["message"])
	}
}
