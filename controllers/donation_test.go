package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func TestValidateDonationRequest(t *testing.T) {
	tests := []struct {
		name string
		req  donationRequest
		want string
	}{
		{
			"valid cash donation",
			donationRequest{Amount: 100, Purpose: "General", Method: models.MethodCash},
			"",
		},
		{
			"valid durga puja with profession",
			donationRequest{Amount: 100, Purpose: models.PurposeDurgaPuja, Method: models.MethodUPI, Profession: "Teacher"},
			"",
		},
		{
			"max amount allowed",
			donationRequest{Amount: models.MaxDonationAmount, Purpose: "General", Method: models.MethodCard},
			"",
		},
		{
			"zero amount",
			donationRequest{Amount: 0, Purpose: "General", Method: models.MethodCash},
			"Missing required donation fields",
		},
		{
			"missing purpose",
			donationRequest{Amount: 100, Method: models.MethodCash},
			"Missing required donation fields",
		},
		{
			"missing method",
			donationRequest{Amount: 100, Purpose: "General"},
			"Missing required donation fields",
		},
		{
			"durga puja without profession",
			donationRequest{Amount: 100, Purpose: models.PurposeDurgaPuja, Method: models.MethodUPI},
			"Profession is required for Durga Puja donations",
		},
		{
			"negative amount",
			donationRequest{Amount: -5, Purpose: "General", Method: models.MethodCash},
			"Amount must be greater than 0",
		},
		{
			"amount over ceiling",
			donationRequest{Amount: models.MaxDonationAmount + 1, Purpose: "General", Method: models.MethodCash},
			"Amount cannot exceed ₹10,00,000",
		},
		{
			"unknown method",
			donationRequest{Amount: 100, Purpose: "General", Method: "Cheque"},
			"Invalid payment method",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateDonationRequest(tt.req); got != tt.want {
				t.Errorf("validateDonationRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateDonationOrderUnauthenticated(t *testing.T) {
	dc := &DonationController{}
	req := httptest.NewRequest(http.MethodPost, "/api/user/create-donation-order", nil)
	rec := httptest.NewRecorder()

	dc.CreateDonationOrder(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCreateDonationOrderRejectsInvalidInput(t *testing.T) {
	dc := &DonationController{}

	tests := []struct {
		name    string
		payload donationRequest
		wantMsg string
	}{
		{
			"durga puja without profession",
			donationRequest{Amount: 100, Purpose: models.PurposeDurgaPuja, Method: models.MethodUPI},
			"Profession is required for Durga Puja donations",
		},
		{
			"amount over ceiling",
			donationRequest{Amount: 2000000, Purpose: "General", Method: models.MethodCash},
			"Amount cannot exceed ₹10,00,000",
		},
		{
			"unknown method",
			donationRequest{Amount: 100, Purpose: "General", Method: "Barter"},
			"Invalid payment method",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(http.MethodPost, "/api/user/create-donation-order",
				jsonBody(t, tt.payload), "507f1f77bcf86cd799439011", utils.RoleUser)
			rec := httptest.NewRecorder()

			dc.CreateDonationOrder(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			body := decodeEnvelope(t, rec)
			if body["message"] != tt.wantMsg {
				t.Errorf("message = %q, want %q", body["message"], tt.wantMsg)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
		})
	}
}

func TestVerifyDonationPaymentRejectsIncompleteData(t *testing.T) {
	dc := &DonationController{}

	payload := map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		// signature and donationId missing
	}
	req := authedRequest(http.MethodPost, "/api/user/verify-donation-payment",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	dc.VerifyDonationPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Missing payment verification data" {
		t.Errorf("message = %q, want missing-data error", body["message"])
	}
}

func TestVerifyDonationPaymentRejectsBadDonationID(t *testing.T) {
	dc := &DonationController{}

	payload := map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig",
		"donationId":          "not-an-object-id",
	}
	req := authedRequest(http.MethodPost, "/api/user/verify-donation-payment",
		jsonBody(t, payload), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	dc.VerifyDonationPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRetryDonationPaymentRequiresDonationID(t *testing.T) {
	dc := &DonationController{}

	req := authedRequest(http.MethodPost, "/api/user/retry-donation-payment",
		jsonBody(t, map[string]string{}), "507f1f77bcf86cd799439011", utils.RoleUser)
	rec := httptest.NewRecorder()

	dc.RetryDonationPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Donation ID is required" {
		t.Errorf("message = %q, want donation-id error", body["message"])
	}
}
