package models

import (
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewCashDonation(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	userID := primitive.NewObjectID()

	d := NewCashDonation(userID, 500, PurposeDurgaPuja, "Doctor", "annual", now)

	if d.PaymentStatus != PaymentCompleted {
		t.Errorf("status = %q, want %q", d.PaymentStatus, PaymentCompleted)
	}
	if d.Method != MethodCash {
		t.Errorf("method = %q, want %q", d.Method, MethodCash)
	}
	wantTxn := fmt.Sprintf("CASH_%d", now.UnixMilli())
	if d.TransactionID != wantTxn {
		t.Errorf("transaction id = %q, want %q", d.TransactionID, wantTxn)
	}
	if d.Profession != "Doctor" {
		t.Errorf("profession = %q, want Doctor", d.Profession)
	}
}

func TestNewPendingDonation(t *testing.T) {
	now := time.Now()
	d := NewPendingDonation(primitive.NewObjectID(), 100, "General", MethodUPI, "", "", now)

	if d.PaymentStatus != PaymentPending {
		t.Errorf("status = %q, want %q", d.PaymentStatus, PaymentPending)
	}
	if d.TransactionID != "" {
		t.Errorf("transaction id = %q, want empty until verification", d.TransactionID)
	}
	if d.Method != MethodUPI {
		t.Errorf("method = %q, want %q", d.Method, MethodUPI)
	}
}

func TestProfessionClearedForOtherPurposes(t *testing.T) {
	d := NewPendingDonation(primitive.NewObjectID(), 100, "General", MethodCard, "Engineer", "", time.Now())
	if d.Profession != "" {
		t.Errorf("profession = %q, want empty for non Durga Puja purpose", d.Profession)
	}
}

func TestCanRetry(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		method  string
		wantErr error
	}{
		{"pending digital", PaymentPending, MethodUPI, nil},
		{"failed digital", PaymentFailed, MethodOnline, nil},
		{"completed digital", PaymentCompleted, MethodCard, ErrDonationCompleted},
		{"completed cash", PaymentCompleted, MethodCash, ErrDonationCompleted},
		{"failed cash", PaymentFailed, MethodCash, ErrCashNoRetry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Donation{PaymentStatus: tt.status, Method: tt.method}
			if err := d.CanRetry(); err != tt.wantErr {
				t.Errorf("CanRetry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{"pending", PaymentPending, nil},
		{"failed", PaymentFailed, nil},
		{"completed", PaymentCompleted, ErrCompletedNoDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Donation{PaymentStatus: tt.status}
			if err := d.CanDelete(); err != tt.wantErr {
				t.Errorf("CanDelete() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidMethod(t *testing.T) {
	for _, m := range []string{MethodCash, MethodUPI, MethodCard, MethodOnline} {
		if !ValidMethod(m) {
			t.Errorf("ValidMethod(%q) = false, want true", m)
		}
	}
	for _, m := range []string{"", "cash", "Cheque", "upi"} {
		if ValidMethod(m) {
			t.Errorf("ValidMethod(%q) = true, want false", m)
		}
	}
}

func TestValidNoticeType(t *testing.T) {
	for _, typ := range NoticeTypes {
		if !ValidNoticeType(typ) {
			t.Errorf("ValidNoticeType(%q) = false, want true", typ)
		}
	}
	if ValidNoticeType("urgent") {
		t.Error("ValidNoticeType(urgent) = true, want false")
	}
}
