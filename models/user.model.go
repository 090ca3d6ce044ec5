package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mobile is a phone number split into country code and a 10-digit number.
type Mobile struct {
	Code   string `bson:"code" json:"code"`
	Number string `bson:"number" json:"number"`
}

// Contact holds a member's reachable addresses.
type Contact struct {
	Email      string `bson:"email" json:"email"`
	MobileNo   Mobile `bson:"mobileno" json:"mobileno"`
	WhatsappNo string `bson:"whatsappno,omitempty" json:"whatsappno,omitempty"`
}

// Address is a member's postal address.
type Address struct {
	Street   string `bson:"street,omitempty" json:"street,omitempty"`
	City     string `bson:"city,omitempty" json:"city,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	State    string `bson:"state,omitempty" json:"state,omitempty"`
	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	Pin      string `bson:"pin,omitempty" json:"pin,omitempty"`
}

// Education holds a member's qualification details.
type Education struct {
	Qualification string `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Upto          string `bson:"upto,omitempty" json:"upto,omitempty"`
}

// Profession holds a member's occupation details.
type Profession struct {
	Category       string `bson:"category,omitempty" json:"category,omitempty"`
	Job            string `bson:"job,omitempty" json:"job,omitempty"`
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
}

// Marriage holds a member's marital details.
type Marriage struct {
	MaritalStatus string `bson:"maritalstatus,omitempty" json:"maritalstatus,omitempty"`
	SpouseName    string `bson:"spousename,omitempty" json:"spousename,omitempty"`
}

// Approval states for a member account.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDisabled = "disabled"
)

// User represents a family member with an optional login profile. A member
// starts as a bare record added by the family head; completing the profile
// sets a username, password and contact details.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"id" json:"id"` // sequential, e.g. "U0000001"
	FullName    string             `bson:"fullname" json:"fullname"`
	FatherID    string             `bson:"fatherid" json:"fatherid"`
	Mother      string             `bson:"mother" json:"mother"`
	Gender      string             `bson:"gender" json:"gender"`
	DOB         string             `bson:"dob" json:"dob"`
	BloodGroup  string             `bson:"bloodgroup" json:"bloodgroup"`
	Username    string             `bson:"username" json:"username"`
	Password    string             `bson:"password,omitempty" json:"-"`
	FamilyID    primitive.ObjectID `bson:"familyid,omitempty" json:"familyid,omitempty"`
	Marriage    Marriage           `bson:"marriage,omitempty" json:"marriage,omitempty"`
	Contact     Contact            `bson:"contact,omitempty" json:"contact,omitempty"`
	Address     Address            `bson:"address,omitempty" json:"address,omitempty"`
	Education   Education          `bson:"education,omitempty" json:"education,omitempty"`
	Profession  Profession         `bson:"profession,omitempty" json:"profession,omitempty"`
	HealthIssue string             `bson:"healthissue,omitempty" json:"healthissue,omitempty"`
	IsLive      string             `bson:"islive,omitempty" json:"islive,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	IsComplete  bool               `bson:"isComplete" json:"isComplete"`
	IsApproved  string             `bson:"isApproved,omitempty" json:"isApproved,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
