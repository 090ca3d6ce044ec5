// controllers/staff.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
	"github.com/NeedlessCat/SDPJSS-ALL/models"
)

// StaffController handles staff requirement posts
type StaffController struct {
	StaffCollection *mongo.Collection
}

// NewStaffController creates a new StaffController
func NewStaffController(client *mongo.Client) *StaffController {
	return &StaffController{
		StaffCollection: client.Database("sdpjss").Collection("staffrequirements"),
	}
}

type staffRequest struct {
	StaffID          string         `json:"staffId"`
	Title            string         `json:"title"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Location         string         `json:"location"`
	Salary           string         `json:"salary"`
	StaffType        string         `json:"staffType"`
	AvailabilityDate string         `json:"availabilityDate"`
	Requirements     []string       `json:"requirements"`
	Contact          models.Contact `json:"contact"`
}

// CreateStaffRequirement publishes a new staff requirement for the caller.
func (sc *StaffController) CreateStaffRequirement(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing required staff fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	staff := models.StaffRequirement{
		UserID:           userID,
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		Location:         req.Location,
		Salary:           req.Salary,
		StaffType:        req.StaffType,
		AvailabilityDate: req.AvailabilityDate,
		Requirements:     req.Requirements,
		Contact:          req.Contact,
		IsOpen:           true,
		PostedDate:       time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := sc.StaffCollection.InsertOne(ctx, staff)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create staff requirement")
		return
	}
	staff.ID = result.InsertedID.(primitive.ObjectID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":          "Staff requirement created successfully",
		"staffRequirement": staff,
	})
}

// GetStaffRequirementsByUser lists the caller's own staff requirements.
func (sc *StaffController) GetStaffRequirementsByUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := sc.StaffCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve staff requirements")
		return
	}
	defer cursor.Close(ctx)

	staffs := []models.StaffRequirement{}
	if err := cursor.All(ctx, &staffs); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding staff requirements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"staffRequirements": staffs})
}

// GetAllStaffRequirements lists every staff requirement with the poster's
// name.
func (sc *StaffController) GetAllStaffRequirements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	staffs, err := listWithPosterNames(ctx, sc.StaffCollection, nil, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve staff requirements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"staffRequirements": staffs})
}

// EditStaffRequirement updates an existing staff requirement.
func (sc *StaffController) EditStaffRequirement(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StaffID == "" || req.Title == "" || req.Description == "" || req.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing required staff fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	staffID, err := primitive.ObjectIDFromHex(req.StaffID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.StaffRequirement
	err = sc.StaffCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": staffID},
		bson.M{"$set": bson.M{
			"title":            req.Title,
			"category":         req.Category,
			"description":      req.Description,
			"location":         req.Location,
			"salary":           req.Salary,
			"staffType":        req.StaffType,
			"availabilityDate": req.AvailabilityDate,
			"requirements":     req.Requirements,
			"contact":          req.Contact,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Staff requirement not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":          "Staff requirement updated successfully",
		"staffRequirement": updated,
	})
}

// DeleteStaffRequirement removes a staff requirement.
func (sc *StaffController) DeleteStaffRequirement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StaffID == "" {
		respondError(w, http.StatusBadRequest, "Staff ID is required")
		return
	}
	staffID, err := primitive.ObjectIDFromHex(req.StaffID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := sc.StaffCollection.DeleteOne(ctx, bson.M{"_id": staffID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete staff requirement")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Staff requirement not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Staff requirement deleted successfully"})
}

// UpdateStaffStatus opens or closes a staff requirement.
func (sc *StaffController) UpdateStaffStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId"`
		IsOpen  *bool  `json:"isOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StaffID == "" {
		respondError(w, http.StatusBadRequest, "Staff ID is missing")
		return
	}
	if req.IsOpen == nil {
		respondError(w, http.StatusBadRequest, "isOpen must be boolean or true/false.")
		return
	}
	staffID, err := primitive.ObjectIDFromHex(req.StaffID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.StaffRequirement
	err = sc.StaffCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": staffID},
		bson.M{"$set": bson.M{"isOpen": *req.IsOpen}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Staff requirement not found")
		return
	}

	verb := "closed"
	if *req.IsOpen {
		verb = "opened"
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":          fmt.Sprintf("Staff requirement %s successfully", verb),
		"staffRequirement": updated,
	})
}
