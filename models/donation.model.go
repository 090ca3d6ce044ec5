package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values for a donation. Completed is terminal.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Donation payment methods
const (
	MethodCash   = "Cash"
	MethodUPI    = "UPI"
	MethodCard   = "Card"
	MethodOnline = "Online"
)

// PurposeDurgaPuja requires the donor's profession on the record.
const PurposeDurgaPuja = "Durga Puja"

// MaxDonationAmount is the ceiling for a single donation (₹10,00,000).
const MaxDonationAmount = 1000000

var (
	ErrDonationCompleted = errors.New("Donation is already completed")
	ErrCashNoRetry       = errors.New("Cash donations cannot be retried")
	ErrCompletedNoDelete = errors.New("Completed donations cannot be deleted")
)

// Donation represents a donation made by a community member
type Donation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Amount          float64            `bson:"amount" json:"amount"`
	Purpose         string             `bson:"purpose" json:"purpose"`
	Method          string             `bson:"method" json:"method"`
	Profession      string             `bson:"profession,omitempty" json:"profession,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	RazorpayOrderID string             `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	Remarks         string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidMethod reports whether m is one of the accepted payment methods.
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodUPI, MethodCard, MethodOnline:
		return true
	}
	return false
}

// NewCashDonation builds a cash donation. Cash never goes through the
// gateway: it is completed on creation with a synthetic transaction id.
func NewCashDonation(userID primitive.ObjectID, amount float64, purpose, profession, remarks string, now time.Time) Donation {
	d := newDonation(userID, amount, purpose, profession, remarks, now)
	d.Method = MethodCash
	d.TransactionID = fmt.Sprintf("CASH_%d", now.UnixMilli())
	d.PaymentStatus = PaymentCompleted
	return d
}

// NewPendingDonation builds a digital donation awaiting gateway payment.
// The transaction id stays empty until the payment is verified.
func NewPendingDonation(userID primitive.ObjectID, amount float64, purpose, method, profession, remarks string, now time.Time) Donation {
	d := newDonation(userID, amount, purpose, profession, remarks, now)
	d.Method = method
	d.PaymentStatus = PaymentPending
	return d
}

func newDonation(userID primitive.ObjectID, amount float64, purpose, profession, remarks string, now time.Time) Donation {
	if purpose != PurposeDurgaPuja {
		profession = ""
	}
	return Donation{
		UserID:     userID,
		Amount:     amount,
		Purpose:    purpose,
		Profession: profession,
		Remarks:    remarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CanRetry reports whether a new payment attempt may be made for this
// donation. Completed donations and cash donations never retry.
func (d *Donation) CanRetry() error {
	if d.PaymentStatus == PaymentCompleted {
		return ErrDonationCompleted
	}
	if d.Method == MethodCash {
		return ErrCashNoRetry
	}
	return nil
}

// CanDelete reports whether the donation may be removed. Only pending and
// failed donations are deletable.
func (d *Donation) CanDelete() error {
	if d.PaymentStatus == PaymentCompleted {
		return ErrCompletedNoDelete
	}
	return nil
}
