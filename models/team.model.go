package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is an entry on the society's team roster.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Position  string             `bson:"position" json:"position"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Mobile    string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
