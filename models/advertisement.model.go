package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Advertisement is a member-published ad valid for a date range.
type Advertisement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description" json:"description"`
	ValidFrom   time.Time          `bson:"validFrom" json:"validFrom"`
	ValidUntil  time.Time          `bson:"validUntil" json:"validUntil"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Contact     Contact            `bson:"contact" json:"contact"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	PostedDate  time.Time          `bson:"postedDate" json:"postedDate"`
}
