package controllers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var mobileNumberRe = regexp.MustCompile(`^\d{10}$`)

// validEmail reports whether s is a well-formed email address.
func validEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// validMobileNumber reports whether s is a 10-digit phone number.
func validMobileNumber(s string) bool {
	return mobileNumberRe.MatchString(s)
}

// respondJSON writes payload as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondSuccess writes a success envelope, merging extra fields into it.
func respondSuccess(w http.ResponseWriter, status int, payload map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	respondJSON(w, status, body)
}

// respondError writes a failure envelope with a descriptive message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
