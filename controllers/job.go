// controllers/job.go
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

// validatePostingContact checks the contact block shared by job, staff and
// advertisement posts.
func validatePostingContact(c models.Contact) string {
	if c.MobileNo.Code == "" || !validMobileNumber(c.MobileNo.Number) {
		return "Enter a valid mobile number"
	}
	if !validEmail(c.Email) {
		return "Enter a valid email"
	}
	return ""
}

// JobController handles job opening posts
type JobController struct {
	JobCollection *mongo.Collection
}

// NewJobController creates a new JobController
func NewJobController(client *mongo.Client) *JobController {
	return &JobController{
		JobCollection: client.Database("sdpjss").Collection("jobopenings"),
	}
}

type jobRequest struct {
	JobID            string         `json:"jobId"`
	Title            string         `json:"title"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Location         string         `json:"location"`
	Salary           string         `json:"salary"`
	JobType          string         `json:"jobType"`
	AvailabilityDate string         `json:"availabilityDate"`
	Requirements     []string       `json:"requirements"`
	Contact          models.Contact `json:"contact"`
}

// CreateJobOpening publishes a new job post for the caller.
func (jc *JobController) CreateJobOpening(w http.ResponseWriter, r *http.Request) {
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

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing required job fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	job := models.JobOpening{
		UserID:           userID,
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		Location:         req.Location,
		Salary:           req.Salary,
		JobType:          req.JobType,
		AvailabilityDate: req.AvailabilityDate,
		Requirements:     req.Requirements,
		Contact:          req.Contact,
		IsOpen:           true,
		PostedDate:       time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := jc.JobCollection.InsertOne(ctx, job)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create job opening")
		return
	}
	job.ID = result.InsertedID.(primitive.ObjectID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":    "Job opening created successfully",
		"jobOpening": job,
	})
}

// GetJobOpeningsByUser lists the caller's own job posts.
func (jc *JobController) GetJobOpeningsByUser(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := jc.JobCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve job openings")
		return
	}
	defer cursor.Close(ctx)

	jobs := []models.JobOpening{}
	if err := cursor.All(ctx, &jobs); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding job openings")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"jobOpenings": jobs})
}

// listWithPosterNames runs a $lookup against users and attaches the
// poster's fullname to each document.
func listWithPosterNames(ctx context.Context, coll *mongo.Collection, match bson.M, sort bson.M) ([]bson.M, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "poster",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$poster", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"userFullname": bson.M{"$ifNull": bson.A{"$poster.fullname", "Unknown"}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"poster": 0}}},
	)
	if sort != nil {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetAllJobOpenings lists every job post with the poster's name.
func (jc *JobController) GetAllJobOpenings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs, err := listWithPosterNames(ctx, jc.JobCollection, nil, bson.M{"postedDate": -1})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve job openings")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"jobOpenings": jobs})
}

// EditJobOpening updates an existing job post.
func (jc *JobController) EditJobOpening(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.JobID == "" || req.Title == "" || req.Description == "" || req.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing required job fields")
		return
	}
	if msg := validatePostingContact(req.Contact); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.JobOpening
	err = jc.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": jobID},
		bson.M{"$set": bson.M{
			"title":            req.Title,
			"category":         req.Category,
			"description":      req.Description,
			"location":         req.Location,
			"salary":           req.Salary,
			"jobType":          req.JobType,
			"availabilityDate": req.AvailabilityDate,
			"requirements":     req.Requirements,
			"contact":          req.Contact,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Job opening not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    "Job opening updated successfully",
		"jobOpening": updated,
	})
}

// DeleteJobOpening removes a job post.
func (jc *JobController) DeleteJobOpening(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID string `json:"jobId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JobID == "" {
		respondError(w, http.StatusBadRequest, "Job ID is required")
		return
	}
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := jc.JobCollection.DeleteOne(ctx, bson.M{"_id": jobID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete job opening")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Job opening not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Job opening deleted successfully"})
}

// UpdateJobStatus opens or closes a job post.
func (jc *JobController) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID  string `json:"jobId"`
		IsOpen *bool  `json:"isOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.JobID == "" {
		respondError(w, http.StatusBadRequest, "Job ID is missing")
		return
	}
	if req.IsOpen == nil {
		respondError(w, http.StatusBadRequest, "isOpen must be boolean or true/false.")
		return
	}
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.JobOpening
	err = jc.JobCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": jobID},
		bson.M{"$set": bson.M{"isOpen": *req.IsOpen}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Job opening not found")
		return
	}

	verb := "closed"
	if *req.IsOpen {
		verb = "opened"
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    fmt.Sprintf("Job opening %s successfully", verb),
		"jobOpening": updated,
	})
}
