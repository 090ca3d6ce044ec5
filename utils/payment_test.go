package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"
	valid := signPayload(orderID, paymentID, secret)

	tests := []struct {
		name      string
		signature string
		secret    string
		want      bool
	}{
		{"valid signature", valid, secret, true},
		{"tampered signature", valid[:len(valid)-1] + "0", secret, false},
		{"wrong secret", valid, "other_secret", false},
		{"empty signature", "", secret, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyPaymentSignature(orderID, paymentID, tt.signature, tt.secret)
			if got != tt.want {
				t.Errorf("VerifyPaymentSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyPaymentSignatureSwappedIDs(t *testing.T) {
	secret := "test_secret"
	sig := signPayload("order_A", "pay_B", secret)
	if VerifyPaymentSignature("pay_B", "order_A", sig, secret) {
		t.Error("signature accepted with order and payment ids swapped")
	}
}
