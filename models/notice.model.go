package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice types shown on the community board.
var NoticeTypes = []string{"alert", "announcement", "event", "achievement", "info"}

// ValidNoticeType reports whether t is an accepted notice type.
func ValidNoticeType(t string) bool {
	for _, v := range NoticeTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Notice is an admin-published announcement.
type Notice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Icon      string             `bson:"icon" json:"icon"`
	Color     string             `bson:"color" json:"color"`
	Type      string             `bson:"type" json:"type"`
	Author    string             `bson:"author" json:"author"`
	Category  string             `bson:"category" json:"category"`
	Time      time.Time          `bson:"time" json:"time"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
