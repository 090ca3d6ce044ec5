// controllers/team.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// TeamController handles the society's team roster
type TeamController struct {
	TeamCollection *mongo.Collection
	Uploader       utils.ImageUploader
}

// NewTeamController creates a new TeamController
func NewTeamController(client *mongo.Client, uploader utils.ImageUploader) *TeamController {
	return &TeamController{
		TeamCollection: client.Database("sdpjss").Collection("teammembers"),
		Uploader:       uploader,
	}
}

// GetAllTeamMembers lists the roster, active members first.
func (tc *TeamController) GetAllTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := tc.TeamCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "isActive", Value: -1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}
	defer cursor.Close(ctx)

	members := []models.TeamMember{}
	if err := cursor.All(ctx, &members); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding team members")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"teamMembers": members,
		"count":       len(members),
	})
}

// uploadTeamImage stores the optional "image" form file and returns its URL,
// or "" when no file was sent.
func (tc *TeamController) uploadTeamImage(ctx context.Context, r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil
	}
	defer file.Close()
	if tc.Uploader == nil {
		return "", fmt.Errorf("image uploads are not configured")
	}
	return tc.Uploader.UploadImage(ctx, file, header.Filename)
}

// AddTeamMember adds a member to the roster. The request is a multipart form
// with an optional image file.
func (tc *TeamController) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	name := r.FormValue("name")
	position := r.FormValue("position")
	if name == "" || position == "" {
		respondError(w, http.StatusBadRequest, "Name and position are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	imageURL, err := tc.uploadTeamImage(ctx, r)
	if err != nil {
		log.Println("Image upload failed:", err)
		respondError(w, http.StatusBadGateway, "Failed to upload image")
		return
	}

	now := time.Now()
	member := models.TeamMember{
		Name:      name,
		Position:  position,
		Email:     r.FormValue("email"),
		Mobile:    r.FormValue("mobile"),
		Image:     imageURL,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := tc.TeamCollection.InsertOne(ctx, member)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add team member")
		return
	}
	member.ID = result.InsertedID.(primitive.ObjectID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":    "Team member added successfully",
		"teamMember": member,
	})
}

// UpdateTeamMember edits a roster entry. Only the fields present in the form
// are changed.
func (tc *TeamController) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := primitive.ObjectIDFromHex(mux.Vars(r)["memberId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	for _, field := range []string{"name", "position", "email", "mobile"} {
		if v := r.FormValue(field); v != "" {
			update[field] = v
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	imageURL, err := tc.uploadTeamImage(ctx, r)
	if err != nil {
		log.Println("Image upload failed:", err)
		respondError(w, http.StatusBadGateway, "Failed to upload image")
		return
	}
	if imageURL != "" {
		update["image"] = imageURL
	}

	var updated models.TeamMember
	err = tc.TeamCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    "Team member updated successfully",
		"teamMember": updated,
	})
}

// DeleteTeamMember removes a roster entry.
func (tc *TeamController) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := primitive.ObjectIDFromHex(mux.Vars(r)["memberId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := tc.TeamCollection.DeleteOne(ctx, bson.M{"_id": memberID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Team member deleted successfully"})
}

// ToggleTeamMemberStatus flips a roster entry between active and inactive.
func (tc *TeamController) ToggleTeamMemberStatus(w http.ResponseWriter, r *http.Request) {
	memberID, err := primitive.ObjectIDFromHex(mux.Vars(r)["memberId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var member models.TeamMember
	if err := tc.TeamCollection.FindOne(ctx, bson.M{"_id": memberID}).Decode(&member); err != nil {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}

	var updated models.TeamMember
	err = tc.TeamCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"isActive": !member.IsActive, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}

	verb := "deactivated"
	if updated.IsActive {
		verb = "activated"
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    fmt.Sprintf("Team member %s successfully", verb),
		"teamMember": updated,
	})
}
