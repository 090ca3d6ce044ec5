// controllers/notice.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
)

// NoticeController handles the community notice board
type NoticeController struct {
	NoticeCollection *mongo.Collection
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(client *mongo.Client) *NoticeController {
	return &NoticeController{
		NoticeCollection: client.Database("sdpjss").Collection("notices"),
	}
}

type noticeRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Type     string `json:"type"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func (req noticeRequest) validate() string {
	if req.Title == "" || req.Message == "" || req.Icon == "" || req.Color == "" ||
		req.Type == "" || req.Author == "" || req.Category == "" {
		return "All fields are required"
	}
	if !models.ValidNoticeType(req.Type) {
		return "Invalid notice type"
	}
	return ""
}

// GetNotices lists all notices, newest first.
func (nc *NoticeController) GetNotices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := nc.NoticeCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve notices")
		return
	}
	defer cursor.Close(ctx)

	notices := []models.Notice{}
	if err := cursor.All(ctx, &notices); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding notices")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"notices": notices,
		"count":   len(notices),
	})
}

// AddNotice publishes a notice to the board.
func (nc *NoticeController) AddNotice(w http.ResponseWriter, r *http.Request) {
	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	notice := models.Notice{
		Title:     req.Title,
		Message:   req.Message,
		Icon:      req.Icon,
		Color:     req.Color,
		Type:      req.Type,
		Author:    req.Author,
		Category:  req.Category,
		Time:      now,
		CreatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := nc.NoticeCollection.InsertOne(ctx, notice)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create notice")
		return
	}
	notice.ID = result.InsertedID.(primitive.ObjectID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "Notice created successfully",
		"notice":  notice,
	})
}

// UpdateNotice edits an existing notice.
func (nc *NoticeController) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := primitive.ObjectIDFromHex(mux.Vars(r)["noticeId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid notice ID")
		return
	}

	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Notice
	err = nc.NoticeCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": noticeID},
		bson.M{"$set": bson.M{
			"title":    req.Title,
			"message":  req.Message,
			"icon":     req.Icon,
			"color":    req.Color,
			"type":     req.Type,
			"author":   req.Author,
			"category": req.Category,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusNotFound, "Notice not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Notice updated successfully",
		"notice":  updated,
	})
}

// DeleteNotice removes a notice from the board.
func (nc *NoticeController) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := primitive.ObjectIDFromHex(mux.Vars(r)["noticeId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid notice ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := nc.NoticeCollection.DeleteOne(ctx, bson.M{"_id": noticeID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete notice")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Notice not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Notice deleted successfully"})
}
