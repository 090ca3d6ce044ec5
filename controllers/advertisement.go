// controllers/advertisement.go
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

// AdvertisementController handles member advertisements
type AdvertisementController struct {
	AdCollection *mongo.Collection
}

// NewAdvertisementController creates a new AdvertisementController
func NewAdvertisementController(client *mongo.Client) *AdvertisementController {
	return &AdvertisementController{
		AdCollection: client.Database("sdpjss").Collection("advertisements"),
	}
}

type adRequest struct {
	AdID        string         `json:"adId"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	ValidFrom   string         `json:"validFrom"`
	ValidUntil  string         `json:"validUntil"`
	Location    string         `json:"location"`
	Contact     models.Contact `json:"contact"`
}

func parseAdDates(from, until string) (time.Time, time.Time, string) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid Valid From date"
	}
	untilDate, err := time.Parse("2006-01-02", until)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid Valid Until date"
	}
	if !fromDate.Before(untilDate) {
		return time.Time{}, time.Time{}, "Valid Until date must be after Valid From date"
	}
	return fromDate, untilDate, ""
}

// AddAdvertisement publishes a new advertisement for the caller.
func (ac *AdvertisementController) AddAdvertisement(w http.ResponseWriter, r *http.Request) {
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

	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.ValidFrom == "" || req.ValidUntil == "" {
		respondError(w, http.StatusBadRequest, "Missing required advertisement fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	fromDate, untilDate, msg := parseAdDates(req.ValidFrom, req.ValidUntil)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	today := time.Now().Truncate(24 * time.Hour)
	if fromDate.Before(today) {
		respondError(w, http.StatusBadRequest, "Valid From date cannot be in the past")
		return
	}

	ad := models.Advertisement{
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ValidFrom:   fromDate,
		ValidUntil:  untilDate,
		Location:    req.Location,
		Contact:     req.Contact,
		IsActive:    true,
		PostedDate:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.AdCollection.InsertOne(ctx, ad)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create advertisement")
		return
	}
	ad.ID = result.InsertedID.(primitive.ObjectID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":       "Advertisement created successfully",
		"advertisement": ad,
	})
}

// GetMyAdvertisements lists the caller's advertisements, newest first.
func (ac *AdvertisementController) GetMyAdvertisements(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := ac.AdCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"postedDate": -1}))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve advertisements")
		return
	}
	defer cursor.Close(ctx)

	ads := []models.Advertisement{}
	if err := cursor.All(ctx, &ads); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding advertisements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"advertisements": ads})
}

// GetAllAdvertisements lists active advertisements within their validity
// window, with the poster's name.
func (ac *AdvertisementController) GetAllAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	ads, err := listWithPosterNames(ctx, ac.AdCollection, bson.M{
		"isActive":   true,
		"validFrom":  bson.M{"$lte": now},
		"validUntil": bson.M{"$gte": now},
	}, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve advertisements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"data": ads})
}

// EditAdvertisement updates an existing advertisement.
func (ac *AdvertisementController) EditAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdID == "" || req.Title == "" || req.Description == "" || req.ValidFrom == "" || req.ValidUntil == "" {
		respondError(w, http.StatusBadRequest, "Missing required advertisement fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	fromDate, untilDate, msg := parseAdDates(req.ValidFrom, req.ValidUntil)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	adID, err := primitive.ObjectIDFromHex(req.AdID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid advertisement ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Advertisement
	err = ac.AdCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": adID},
		bson.M{"$set": bson.M{
			"title":       req.Title,
			"category":    req.Category,
			"description": req.Description,
			"validFrom":   fromDate,
			"validUntil":  untilDate,
			"location":    req.Location,
			"contact":     req.Contact,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Advertisement not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":       "Advertisement updated successfully",
		"advertisement": updated,
	})
}

// DeleteAdvertisement removes an advertisement.
func (ac *AdvertisementController) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdID string `json:"adId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AdID == "" {
		respondError(w, http.StatusBadRequest, "Advertisement ID is required")
		return
	}
	adID, err := primitive.ObjectIDFromHex(req.AdID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid advertisement ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ac.AdCollection.DeleteOne(ctx, bson.M{"_id": adID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete advertisement")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Advertisement not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Advertisement deleted successfully"})
}

// UpdateAdvertisementStatus activates or deactivates an advertisement.
func (ac *AdvertisementController) UpdateAdvertisementStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdID     string `json:"adId"`
		IsActive *bool  `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdID == "" {
		respondError(w, http.StatusBadRequest, "Advertisement ID is missing")
		return
	}
	if req.IsActive == nil {
		respondError(w, http.StatusBadRequest, "isActive must be boolean or true/false.")
		return
	}
	adID, err := primitive.ObjectIDFromHex(req.AdID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid advertisement ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Advertisement
	err = ac.AdCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": adID},
		bson.M{"$set": bson.M{"isActive": *req.IsActive}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Advertisement not found")
		return
	}

	verb := "deactivated"
	if *req.IsActive {
		verb = "activated"
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":       fmt.Sprintf("Advertisement %s successfully", verb),
		"advertisement": updated,
	})
}
