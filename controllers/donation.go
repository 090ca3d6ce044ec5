// controllers/donation.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// DonationController handles the donation lifecycle: order creation, payment
// verification, retry, deletion and reporting.
type DonationController struct {
	DonationCollection *mongo.Collection
	UserCollection     *mongo.Collection
	Gateway            utils.PaymentGateway
	EmailService       *utils.EmailService
	KeySecret          string
	Currency           string
}

// NewDonationController creates a new DonationController
func NewDonationController(client *mongo.Client, gateway utils.PaymentGateway, emailService *utils.EmailService) *DonationController {
	db := client.Database("sdpjss")
	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "INR"
	}
	return &DonationController{
		DonationCollection: db.Collection("donations"),
		UserCollection:     db.Collection("users"),
		Gateway:            gateway,
		EmailService:       emailService,
		KeySecret:          os.Getenv("RAZORPAY_KEY_SECRET"),
		Currency:           currency,
	}
}

type donationRequest struct {
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose"`
	Method     string  `json:"method"`
	Remarks    string  `json:"remarks"`
	Profession string  `json:"profession"`
}

// validateDonationRequest applies the creation checks in order: required
// fields, Durga Puja profession, amount bounds, method enum. Returns a
// user-facing message on failure.
func validateDonationRequest(req donationRequest) string {
	if req.Amount == 0 || req.Purpose == "" || req.Method == "" {
		return "Missing required donation fields"
	}
	if req.Purpose == models.PurposeDurgaPuja && req.Profession == "" {
		return "Profession is required for Durga Puja donations"
	}
	if req.Amount <= 0 {
		return "Amount must be greater than 0"
	}
	if req.Amount > models.MaxDonationAmount {
		return "Amount cannot exceed ₹10,00,000"
	}
	if !models.ValidMethod(req.Method) {
		return "Invalid payment method"
	}
	return ""
}

// CreateDonationOrder records a donation. Cash donations complete on the
// spot; digital ones are persisted pending and handed to the gateway.
func (dc *DonationController) CreateDonationOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}

	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateDonationRequest(req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Cash donations never touch the gateway
	if req.Method == models.MethodCash {
		donation := models.NewCashDonation(userID, req.Amount, req.Purpose, req.Profession, req.Remarks, time.Now())
		result, err := dc.DonationCollection.InsertOne(ctx, donation)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to record donation")
			return
		}
		donation.ID = result.InsertedID.(primitive.ObjectID)

		respondSuccess(w, http.StatusCreated, map[string]interface{}{
			"message":         "Cash donation recorded successfully",
			"donation":        donation,
			"paymentRequired": false,
		})
		return
	}

	donation := models.NewPendingDonation(userID, req.Amount, req.Purpose, req.Method, req.Profession, req.Remarks, time.Now())
	result, err := dc.DonationCollection.InsertOne(ctx, donation)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to record donation")
		return
	}
	donationID := result.InsertedID.(primitive.ObjectID)

	order, err := dc.Gateway.CreateOrder(
		int64(math.Round(req.Amount*100)), // paise
		dc.Currency,
		donationID.Hex(),
		map[string]interface{}{
			"purpose":    req.Purpose,
			"userId":     claims.ID,
			"donationId": donationID.Hex(),
		},
	)
	if err != nil {
		log.Println("Error creating payment order:", err)
		respondError(w, http.StatusBadGateway, "Failed to create payment order")
		return
	}

	_, err = dc.DonationCollection.UpdateOne(ctx, bson.M{"_id": donationID}, bson.M{
		"$set": bson.M{"razorpayOrderId": order.ID, "updatedAt": time.Now()},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update donation")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":         "Donation order created successfully",
		"order":           order,
		"donationId":      donationID,
		"paymentRequired": true,
	})
}

// VerifyDonationPayment checks the gateway signature and completes or fails
// the donation accordingly.
func (dc *DonationController) VerifyDonationPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
		DonationID        string `json:"donationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" || req.DonationID == "" {
		respondError(w, http.StatusBadRequest, "Missing payment verification data")
		return
	}

	donationID, err := primitive.ObjectIDFromHex(req.DonationID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if !utils.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, dc.KeySecret) {
		_, err := dc.DonationCollection.UpdateOne(ctx, bson.M{"_id": donationID}, bson.M{
			"$set": bson.M{"paymentStatus": models.PaymentFailed, "updatedAt": time.Now()},
		})
		if err != nil {
			log.Println("Error marking donation failed:", err)
		}
		respondError(w, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	var donation models.Donation
	err = dc.DonationCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": donationID},
		bson.M{
			"$set": bson.M{
				"transactionId": req.RazorpayPaymentID,
				"paymentStatus": models.PaymentCompleted,
				"updatedAt":     time.Now(),
			},
			"$unset": bson.M{"razorpayOrderId": 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&donation)
	if err != nil {
		respondError(w, http.StatusNotFound, "Donation record not found")
		return
	}

	// Best effort: a failed receipt email never fails the verification
	dc.sendReceipt(ctx, donation)

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":  "Payment verified and donation recorded successfully",
		"donation": donation,
	})
}

func (dc *DonationController) sendReceipt(ctx context.Context, donation models.Donation) {
	if dc.EmailService == nil {
		return
	}
	var user models.User
	if err := dc.UserCollection.FindOne(ctx, bson.M{"_id": donation.UserID}).Decode(&user); err != nil {
		log.Println("Receipt email skipped, donor lookup failed:", err)
		return
	}
	if user.Contact.Email == "" {
		return
	}
	go func(email, name string) {
		if err := dc.EmailService.SendDonationReceipt(email, name, donation); err != nil {
			log.Printf("Failed to send donation receipt to %s: %v", email, err)
		}
	}(user.Contact.Email, user.FullName)
}

// RetryDonationPayment creates a fresh gateway order for a non-completed,
// non-cash donation and resets it to pending.
func (dc *DonationController) RetryDonationPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}

	var req struct {
		DonationID string `json:"donationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DonationID == "" {
		respondError(w, http.StatusBadRequest, "Donation ID is required")
		return
	}

	donationID, err := primitive.ObjectIDFromHex(req.DonationID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var donation models.Donation
	err = dc.DonationCollection.FindOne(ctx, bson.M{"_id": donationID, "userId": userID}).Decode(&donation)
	if err != nil {
		respondError(w, http.StatusNotFound, "Donation not found or access denied")
		return
	}

	if err := donation.CanRetry(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := dc.Gateway.CreateOrder(
		int64(math.Round(donation.Amount*100)),
		dc.Currency,
		donation.ID.Hex(),
		map[string]interface{}{
			"purpose":    donation.Purpose,
			"userId":     claims.ID,
			"donationId": donation.ID.Hex(),
			"retry":      "true",
		},
	)
	if err != nil {
		log.Println("Error creating retry payment order:", err)
		respondError(w, http.StatusBadGateway, "Failed to create payment order")
		return
	}

	_, err = dc.DonationCollection.UpdateOne(ctx, bson.M{"_id": donationID}, bson.M{
		"$set": bson.M{
			"razorpayOrderId": order.ID,
			"paymentStatus":   models.PaymentPending,
			"updatedAt":       time.Now(),
		},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update donation")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    "Payment retry order created successfully",
		"order":      order,
		"donationId": donation.ID,
	})
}

// DeleteDonation removes a pending or failed donation owned by the caller.
// Completed donations are immutable.
func (dc *DonationController) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}

	donationID, err := primitive.ObjectIDFromHex(mux.Vars(r)["donationId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var donation models.Donation
	err = dc.DonationCollection.FindOne(ctx, bson.M{"_id": donationID, "userId": userID}).Decode(&donation)
	if err != nil {
		respondError(w, http.StatusNotFound, "Donation not found or access denied")
		return
	}

	if err := donation.CanDelete(); err != nil {
		respondError(w, http.StatusForbidden, err.Error())
		return
	}

	if _, err := dc.DonationCollection.DeleteOne(ctx, bson.M{"_id": donationID}); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete donation")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Donation deleted successfully",
	})
}

// GetUserDonations lists the caller's donations, most recent first.
func (dc *DonationController) GetUserDonations(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := dc.DonationCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve donations")
		return
	}
	defer cursor.Close(ctx)

	donations := []models.Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding donations")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"donations": donations,
	})
}

// donationWithDonor is a donation joined with selected donor fields.
type donationWithDonor struct {
	models.Donation `bson:",inline"`
	DonorName       string `bson:"donorName" json:"donorName"`
	DonorEmail      string `bson:"donorEmail" json:"donorEmail"`
}

// GetAllDonations lists every donation with donor name and email, plus
// totals over the completed ones.
func (dc *DonationController) GetAllDonations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "donor",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$donor", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{
			"donorName":  bson.M{"$ifNull": bson.A{"$donor.fullname", "Unknown"}},
			"donorEmail": bson.M{"$ifNull": bson.A{"$donor.contact.email", ""}},
		}}},
		{{Key: "$project", Value: bson.M{"donor": 0}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := dc.DonationCollection.Aggregate(ctx, pipeline)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve donations")
		return
	}
	defer cursor.Close(ctx)

	donations := []donationWithDonor{}
	if err := cursor.All(ctx, &donations); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding donations")
		return
	}

	totalAmount := 0.0
	completedCount := 0
	for _, d := range donations {
		if d.PaymentStatus == models.PaymentCompleted {
			totalAmount += d.Amount
			completedCount++
		}
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"donations":      donations,
		"totalAmount":    totalAmount,
		"totalCount":     len(donations),
		"completedCount": completedCount,
	})
}

// donationGroup is one row of a grouped donation aggregation.
type donationGroup struct {
	ID          string  `bson:"_id" json:"_id"`
	Count       int64   `bson:"count" json:"count"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

func (dc *DonationController) groupDonations(ctx context.Context, match bson.M, groupBy string, sort bson.D) ([]donationGroup, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         groupBy,
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$sort", Value: sort}},
	)

	cursor, err := dc.DonationCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []donationGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetDonationStats aggregates completed donations by purpose, method and
// status, plus a trailing 30-day window.
func (dc *DonationController) GetDonationStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	completed := bson.M{"paymentStatus": models.PaymentCompleted}

	totalDonations, err := dc.DonationCollection.CountDocuments(ctx, completed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute donation stats")
		return
	}

	byPurpose, err := dc.groupDonations(ctx, completed, "$purpose", bson.D{{Key: "totalAmount", Value: -1}})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute donation stats")
		return
	}
	byMethod, err := dc.groupDonations(ctx, completed, "$method", bson.D{{Key: "totalAmount", Value: -1}})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute donation stats")
		return
	}
	byStatus, err := dc.groupDonations(ctx, nil, "$paymentStatus", bson.D{{Key: "count", Value: -1}})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute donation stats")
		return
	}

	totalAmount := 0.0
	for _, g := range byPurpose {
		totalAmount += g.TotalAmount
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	recentGroups, err := dc.groupDonations(ctx, bson.M{
		"paymentStatus": models.PaymentCompleted,
		"createdAt":     bson.M{"$gte": thirtyDaysAgo},
	}, "recent", bson.D{{Key: "count", Value: -1}})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute donation stats")
		return
	}
	recent := donationGroup{}
	if len(recentGroups) > 0 {
		recent = recentGroups[0]
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"stats": map[string]interface{}{
			"totalDonations":    totalDonations,
			"totalAmount":       totalAmount,
			"donationsByPurpose": byPurpose,
			"donationsByMethod":  byMethod,
			"donationsByStatus":  byStatus,
			"recentDonations": map[string]interface{}{
				"count":       recent.Count,
				"totalAmount": recent.TotalAmount,
			},
		},
	})
}
