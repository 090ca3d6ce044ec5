// controllers/admin.go
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

	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// AdminController handles the admin panel: login, entity lists, statistics
// and member approval.
type AdminController struct {
	Admins             *utils.AdminStore
	FamilyCollection   *mongo.Collection
	UserCollection     *mongo.Collection
	JobCollection      *mongo.Collection
	StaffCollection    *mongo.Collection
	AdCollection       *mongo.Collection
	DonationCollection *mongo.Collection
}

// NewAdminController creates a new AdminController
func NewAdminController(client *mongo.Client, admins *utils.AdminStore) *AdminController {
	db := client.Database("sdpjss")
	return &AdminController{
		Admins:             admins,
		FamilyCollection:   db.Collection("families"),
		UserCollection:     db.Collection("users"),
		JobCollection:      db.Collection("jobopenings"),
		StaffCollection:    db.Collection("staffrequirements"),
		AdCollection:       db.Collection("advertisements"),
		DonationCollection: db.Collection("donations"),
	}
}

// Login authenticates an admin against the credential store.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !ac.Admins.Check(creds.Email, creds.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	atoken, err := utils.GenerateToken(creds.Email, utils.RoleAdmin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"atoken": atoken})
}

// GetFamilyList lists every family with a summary of its members.
func (ac *AdminController) GetFamilyList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "memberids",
			"foreignField": "_id",
			"as":           "members",
		}}},
		{{Key: "$project", Value: bson.M{
			"password":           0,
			"members.password":   0,
			"members.marriage":   0,
			"members.address":    0,
			"members.education":  0,
			"members.profession": 0,
		}}},
		{{Key: "$sort", Value: bson.M{"familyid": 1}}},
	}

	cursor, err := ac.FamilyCollection.Aggregate(ctx, pipeline)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve families")
		return
	}
	defer cursor.Close(ctx)

	families := []bson.M{}
	if err := cursor.All(ctx, &families); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding families")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("Retrieved %d families successfully", len(families)),
		"families": families,
		"count":    len(families),
	})
}

// GetUserList lists every member with their family's name attached.
func (ac *AdminController) GetUserList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "families",
			"localField":   "familyid",
			"foreignField": "_id",
			"as":           "family",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$family", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{
			"familyname": bson.M{"$ifNull": bson.A{"$family.familyname", ""}},
		}}},
		{{Key: "$project", Value: bson.M{"password": 0, "family": 0}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := ac.UserCollection.Aggregate(ctx, pipeline)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	defer cursor.Close(ctx)

	users := []bson.M{}
	if err := cursor.All(ctx, &users); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding users")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Retrieved %d users successfully", len(users)),
		"users":   users,
		"count":   len(users),
	})
}

// GetJobOpeningList lists every job post for the admin panel.
func (ac *AdminController) GetJobOpeningList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs, err := listWithPosterNames(ctx, ac.JobCollection, nil, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve job openings")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"jobOpenings": jobs,
		"count":       len(jobs),
	})
}

// GetStaffRequirementList lists every staff requirement for the admin panel.
func (ac *AdminController) GetStaffRequirementList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	staffs, err := listWithPosterNames(ctx, ac.StaffCollection, nil, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve staff requirements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"staffRequirements": staffs,
		"count":             len(staffs),
	})
}

// GetAdvertisementList lists every advertisement for the admin panel,
// including inactive and expired ones.
func (ac *AdminController) GetAdvertisementList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ads, err := listWithPosterNames(ctx, ac.AdCollection, nil, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve advertisements")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"advertisements": ads,
		"count":          len(ads),
	})
}

// GetFamilyCount returns family registrations for a year, bucketed by month.
func (ac *AdminController) GetFamilyCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	year := targetYear(r.URL.Query().Get("year"), time.Now())
	start, end := yearRange(year)

	buckets, err := monthlyBuckets(ctx, ac.FamilyCollection,
		bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}, false, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve family counts")
		return
	}

	var total int64
	series := []map[string]interface{}{}
	for _, b := range fillMonths(buckets) {
		total += b.Count
		series = append(series, map[string]interface{}{
			"month":    monthNames[b.Month-1],
			"families": b.Count,
		})
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"year":          year,
		"monthlyCounts": series,
		"totalFamilies": total,
	})
}

// GetUserCount returns member registrations for a year, bucketed by month
// and split into complete and incomplete profiles.
func (ac *AdminController) GetUserCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	year := targetYear(r.URL.Query().Get("year"), time.Now())
	start, end := yearRange(year)

	buckets, err := monthlyBuckets(ctx, ac.UserCollection,
		bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}, false, true)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve user counts")
		return
	}

	var total, complete int64
	series := []map[string]interface{}{}
	for _, b := range fillMonths(buckets) {
		total += b.Count
		complete += b.Complete
		series = append(series, map[string]interface{}{
			"month":           monthNames[b.Month-1],
			"users":           b.Count,
			"completeUsers":   b.Complete,
			"incompleteUsers": b.Count - b.Complete,
		})
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"year":            year,
		"monthlyCounts":   series,
		"totalUsers":      total,
		"completeUsers":   complete,
		"incompleteUsers": total - complete,
	})
}

// GetDonationsByYear returns completed donation totals for a year, bucketed
// by month.
func (ac *AdminController) GetDonationsByYear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	year := targetYear(r.URL.Query().Get("year"), time.Now())
	start, end := yearRange(year)

	buckets, err := monthlyBuckets(ctx, ac.DonationCollection, bson.M{
		"paymentStatus": models.PaymentCompleted,
		"createdAt":     bson.M{"$gte": start, "$lt": end},
	}, true, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve donation totals")
		return
	}

	var totalAmount float64
	var totalCount int64
	series := []map[string]interface{}{}
	for _, b := range fillMonths(buckets) {
		totalAmount += b.Amount
		totalCount += b.Count
		series = append(series, map[string]interface{}{
			"month":         monthNames[b.Month-1],
			"donations":     b.Amount,
			"donationCount": b.Count,
		})
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"year":           year,
		"monthlyTotals":  series,
		"totalAmount":    totalAmount,
		"totalDonations": totalCount,
	})
}

// earliestYear returns the year of the oldest createdAt in a collection, or
// 0 when the collection is empty.
func earliestYear(ctx context.Context, coll *mongo.Collection) int {
	var doc struct {
		CreatedAt time.Time `bson:"createdAt"`
	}
	err := coll.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.M{"createdAt": 1}).SetProjection(bson.M{"createdAt": 1}),
	).Decode(&doc)
	if err != nil || doc.CreatedAt.IsZero() {
		return 0
	}
	return doc.CreatedAt.Year()
}

// GetAvailableYears lists the years selectable on the statistics screens,
// newest first, from the earliest record across families, users and
// donations up to the current year.
func (ac *AdminController) GetAvailableYears(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := 2024
	for _, coll := range []*mongo.Collection{ac.FamilyCollection, ac.UserCollection, ac.DonationCollection} {
		if y := earliestYear(ctx, coll); y != 0 && y < start {
			start = y
		}
	}

	years := []int{}
	for y := time.Now().Year(); y >= start; y-- {
		years = append(years, y)
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"years": years})
}

// GetAdminStats returns the dashboard totals.
func (ac *AdminController) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	familyCount, err := ac.FamilyCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	userCount, err := ac.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	completeUsers, err := ac.UserCollection.CountDocuments(ctx, bson.M{"isComplete": true})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	jobCount, err := ac.JobCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	staffCount, err := ac.StaffCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	adCount, err := ac.AdCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}

	cursor, err := ac.DonationCollection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentCompleted}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount"},
		}}},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	defer cursor.Close(ctx)

	donations := struct {
		Count  int64   `bson:"count"`
		Amount float64 `bson:"amount"`
	}{}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&donations); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
			return
		}
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"stats": map[string]interface{}{
			"totalFamilies":       familyCount,
			"totalUsers":          userCount,
			"completeUsers":       completeUsers,
			"incompleteUsers":     userCount - completeUsers,
			"totalJobOpenings":    jobCount,
			"totalStaffRequired":  staffCount,
			"totalAdvertisements": adCount,
			"totalDonations":      donations.Count,
			"totalDonationAmount": donations.Amount,
		},
	})
}

// UpdateUserStatus changes a member's approval state.
func (ac *AdminController) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     string `json:"userId"`
		IsApproved string `json:"isApproved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}
	switch req.IsApproved {
	case models.StatusPending, models.StatusApproved, models.StatusDisabled:
	default:
		respondError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.User
	err = ac.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"isApproved": req.IsApproved, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).
			SetProjection(bson.M{"password": 0}),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "User status updated successfully",
		"user":    updated,
	})
}
