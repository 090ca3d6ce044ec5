package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Family is the registration unit of the community. Members are added to a
// family and referenced by their ObjectIDs.
type Family struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	FamilyID      string               `bson:"familyid" json:"familyid"` // sequential, e.g. "F0001"
	FamilyName    string               `bson:"familyname" json:"familyname"`
	Password      string               `bson:"password,omitempty" json:"-"`
	FamilyAddress string               `bson:"familyaddress" json:"familyaddress"`
	Email         string               `bson:"email" json:"email"`
	Gotra         string               `bson:"gotra" json:"gotra"`
	Mobile        Mobile               `bson:"mobile" json:"mobile"`
	MemberIDs     []primitive.ObjectID `bson:"memberids" json:"memberids"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// MaxFamilies caps sequential family registration at F1000.
const MaxFamilies = 1000
