package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobOpening is a job post published by a member.
type JobOpening struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Description      string             `bson:"description" json:"description"`
	Location         string             `bson:"location" json:"location"`
	Salary           string             `bson:"salary,omitempty" json:"salary,omitempty"`
	JobType          string             `bson:"jobType,omitempty" json:"jobType,omitempty"`
	AvailabilityDate string             `bson:"availabilityDate,omitempty" json:"availabilityDate,omitempty"`
	Requirements     []string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Contact          Contact            `bson:"contact" json:"contact"`
	IsOpen           bool               `bson:"isOpen" json:"isOpen"`
	PostedDate       time.Time          `bson:"postedDate" json:"postedDate"`
}

// StaffRequirement is a request for household or business staff.
type StaffRequirement struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Description      string             `bson:"description" json:"description"`
	Location         string             `bson:"location" json:"location"`
	Salary           string             `bson:"salary,omitempty" json:"salary,omitempty"`
	StaffType        string             `bson:"staffType,omitempty" json:"staffType,omitempty"`
	AvailabilityDate string             `bson:"availabilityDate,omitempty" json:"availabilityDate,omitempty"`
	Requirements     []string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Contact          Contact            `bson:"contact" json:"contact"`
	IsOpen           bool               `bson:"isOpen" json:"isOpen"`
	PostedDate       time.Time          `bson:"postedDate" json:"postedDate"`
}
