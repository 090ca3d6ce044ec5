package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// authedRequest builds a request with token claims already attached, the way
// the auth middleware would leave it.
func authedRequest(method, target string, body io.Reader, id, role string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	claims := &utils.Claims{ID: id, Role: role}
	ctx := context.WithValue(req.Context(), middleware.AuthContextKey, claims)
	return req.WithContext(ctx)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(raw)
}

// decodeEnvelope parses the standard {success, message, ...} response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}
