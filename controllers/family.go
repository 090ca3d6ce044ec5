// controllers/family.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// FamilyController handles family registration, login and member management
type FamilyController struct {
	Client            *mongo.Client
	FamilyCollection  *mongo.Collection
	UserCollection    *mongo.Collection
	CounterCollection *mongo.Collection
}

// NewFamilyController creates a new FamilyController
func NewFamilyController(client *mongo.Client) *FamilyController {
	db := client.Database("sdpjss")
	return &FamilyController{
		Client:            client,
		FamilyCollection:  db.Collection("families"),
		UserCollection:    db.Collection("users"),
		CounterCollection: db.Collection("counters"),
	}
}

// generateUsername derives a login name from the first name and date of
// birth: firstname + YYMMDD.
func generateUsername(fullname, dob string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(fullname)))
	if len(parts) == 0 {
		return ""
	}
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s%s", parts[0], birth.Format("060102"))
}

// RegisterFamily handles family registration
func (fc *FamilyController) RegisterFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FamilyName    string        `json:"familyname"`
		FamilyAddress string        `json:"familyaddress"`
		Email         string        `json:"email"`
		Password      string        `json:"password"`
		Gotra         string        `json:"gotra"`
		Mobile        models.Mobile `json:"mobile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FamilyName == "" || req.FamilyAddress == "" || req.Email == "" || req.Password == "" || req.Gotra == "" {
		respondError(w, http.StatusBadRequest, "Missing Details")
		return
	}
	if req.Mobile.Code == "" || !validMobileNumber(req.Mobile.Number) {
		respondError(w, http.StatusBadRequest, "Enter a valid mobile number")
		return
	}
	if !validEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Enter a valid email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := fc.FamilyCollection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	seq, err := utils.NextSequence(ctx, fc.CounterCollection, utils.FamilyCounter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to allocate family ID")
		return
	}
	if seq > models.MaxFamilies {
		respondError(w, http.StatusBadRequest, "Maximum family registrations reached")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	now := time.Now()
	family := models.Family{
		FamilyID:      utils.FormatFamilyID(seq),
		FamilyName:    req.FamilyName,
		Password:      string(hashedPassword),
		FamilyAddress: req.FamilyAddress,
		Email:         req.Email,
		Gotra:         req.Gotra,
		Mobile:        req.Mobile,
		MemberIDs:     []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := fc.FamilyCollection.InsertOne(ctx, family)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating family")
		return
	}

	token, err := utils.GenerateToken(result.InsertedID.(primitive.ObjectID).Hex(), utils.RoleFamily)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"token":    token,
		"familyid": family.FamilyID,
	})
}

// LoginFamily handles family authentication
func (fc *FamilyController) LoginFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FamilyID   string `json:"familyid"`
		FamilyName string `json:"familyname"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var family models.Family
	err := fc.FamilyCollection.FindOne(ctx, bson.M{"familyid": req.FamilyID, "familyname": req.FamilyName}).Decode(&family)
	if err != nil {
		respondError(w, http.StatusNotFound, "Family does not exist")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(family.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(family.ID.Hex(), utils.RoleFamily)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"token": token})
}

// GetProfile returns the family document with its members populated.
func (fc *FamilyController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	famID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid family ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": famID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "memberids",
			"foreignField": "_id",
			"as":           "members",
		}}},
		{{Key: "$project", Value: bson.M{"password": 0, "members.password": 0}}},
	}

	cursor, err := fc.FamilyCollection.Aggregate(ctx, pipeline)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil || len(results) == 0 {
		respondError(w, http.StatusNotFound, "Family not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"family": results[0]})
}

// UpdateProfile updates the family's own details.
func (fc *FamilyController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	famID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid family ID")
		return
	}

	var req struct {
		FamilyName    string        `json:"familyname"`
		FamilyAddress string        `json:"familyaddress"`
		Email         string        `json:"email"`
		Gotra         string        `json:"gotra"`
		Mobile        models.Mobile `json:"mobile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FamilyName == "" || req.FamilyAddress == "" || req.Email == "" || req.Gotra == "" || req.Mobile.Number == "" {
		respondError(w, http.StatusBadRequest, "Data Missing")
		return
	}
	if !validEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Enter a valid email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := fc.FamilyCollection.UpdateOne(ctx, bson.M{"_id": famID}, bson.M{
		"$set": bson.M{
			"familyname":    req.FamilyName,
			"familyaddress": req.FamilyAddress,
			"email":         req.Email,
			"gotra":         req.Gotra,
			"mobile":        req.Mobile,
			"updatedAt":     time.Now(),
		},
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Family not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Profile Updated"})
}

// AddMember creates a member record and pushes its reference onto the
// family inside one transaction, so a failed push cannot leave an orphaned
// member.
func (fc *FamilyController) AddMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	famID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid family ID")
		return
	}

	var req struct {
		FullName   string `json:"fullname"`
		FatherID   string `json:"fatherid"`
		Mother     string `json:"mother"`
		Gender     string `json:"gender"`
		DOB        string `json:"dob"`
		BloodGroup string `json:"bloodgroup"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.FatherID == "" || req.Mother == "" || req.Gender == "" || req.DOB == "" || req.BloodGroup == "" {
		respondError(w, http.StatusBadRequest, "Missing Details")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	count, err := fc.FamilyCollection.CountDocuments(ctx, bson.M{"_id": famID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count == 0 {
		respondError(w, http.StatusNotFound, "Family not found")
		return
	}

	seq, err := utils.NextSequence(ctx, fc.CounterCollection, utils.UserCounter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to allocate member ID")
		return
	}

	now := time.Now()
	member := models.User{
		UserID:     utils.FormatUserID(seq),
		FullName:   req.FullName,
		FatherID:   req.FatherID,
		Mother:     req.Mother,
		Gender:     req.Gender,
		DOB:        req.DOB,
		BloodGroup: req.BloodGroup,
		Username:   generateUsername(req.FullName, req.DOB),
		FamilyID:   famID,
		IsComplete: false,
		IsApproved: models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	session, err := fc.Client.StartSession()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to start transaction")
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := fc.UserCollection.InsertOne(sc, member)
		if err != nil {
			return nil, err
		}
		_, err = fc.FamilyCollection.UpdateOne(sc,
			bson.M{"_id": famID},
			bson.M{"$push": bson.M{"memberids": result.InsertedID}},
		)
		return nil, err
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add member")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{"message": "Member Added"})
}

type memberProfileRequest struct {
	UserID      string            `json:"userId"`
	FullName    string            `json:"fullname"`
	FatherID    string            `json:"fatherid"`
	Mother      string            `json:"mother"`
	Gender      string            `json:"gender"`
	DOB         string            `json:"dob"`
	BloodGroup  string            `json:"bloodgroup"`
	Username    string            `json:"username"`
	Password    string            `json:"password"`
	Marriage    models.Marriage   `json:"marriage"`
	Contact     models.Contact    `json:"contact"`
	Address     models.Address    `json:"address"`
	Education   models.Education  `json:"education"`
	Profession  models.Profession `json:"profession"`
	HealthIssue string            `json:"healthissue"`
	IsLive      string            `json:"islive"`
}

func (req *memberProfileRequest) missingFields(requirePassword bool) bool {
	if requirePassword && req.Password == "" {
		return true
	}
	return req.UserID == "" || req.FullName == "" || req.FatherID == "" || req.Mother == "" ||
		req.Gender == "" || req.DOB == "" || req.BloodGroup == "" || req.Username == "" ||
		req.Contact.Email == "" || req.HealthIssue == "" || req.IsLive == ""
}

func (req *memberProfileRequest) profileUpdate() bson.M {
	return bson.M{
		"fullname":    req.FullName,
		"fatherid":    req.FatherID,
		"mother":      req.Mother,
		"gender":      req.Gender,
		"dob":         req.DOB,
		"bloodgroup":  req.BloodGroup,
		"username":    req.Username,
		"marriage":    req.Marriage,
		"contact":     req.Contact,
		"address":     req.Address,
		"education":   req.Education,
		"profession":  req.Profession,
		"healthissue": req.HealthIssue,
		"islive":      req.IsLive,
		"updatedAt":   time.Now(),
	}
}

// CompleteProfile fills in a member's full profile and login credentials.
func (fc *FamilyController) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	famID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid family ID")
		return
	}

	var req memberProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.missingFields(true) {
		respondError(w, http.StatusBadRequest, "Complete Profile Data Missing")
		return
	}
	if !validEmail(req.Contact.Email) {
		respondError(w, http.StatusBadRequest, "Enter a Valid Email")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	update := req.profileUpdate()
	update["password"] = string(hashedPassword)
	update["familyid"] = famID
	update["isComplete"] = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := fc.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": update})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to complete profile")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Profile Completed"})
}

// EditProfile updates a member's profile from the family portal.
func (fc *FamilyController) EditProfile(w http.ResponseWriter, r *http.Request) {
	var req memberProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.missingFields(false) {
		respondError(w, http.StatusBadRequest, "Profile Data Missing")
		return
	}
	if !validEmail(req.Contact.Email) {
		respondError(w, http.StatusBadRequest, "Enter a Valid Email")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := fc.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": req.profileUpdate()})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Profile Updated Successfully"})
}

// DeleteMember removes a member from the family and deletes the record,
// both inside one transaction.
func (fc *FamilyController) DeleteMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not Authorized. Login Again")
		return
	}
	famID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid family ID")
		return
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "User ID and Family ID are required")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var family models.Family
	if err := fc.FamilyCollection.FindOne(ctx, bson.M{"_id": famID}).Decode(&family); err != nil {
		respondError(w, http.StatusNotFound, "Family not found")
		return
	}

	belongs := false
	for _, id := range family.MemberIDs {
		if id == userID {
			belongs = true
			break
		}
	}
	if !belongs {
		respondError(w, http.StatusForbidden, "User does not belong to this family")
		return
	}

	session, err := fc.Client.StartSession()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to start transaction")
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := fc.FamilyCollection.UpdateOne(sc,
			bson.M{"_id": famID},
			bson.M{"$pull": bson.M{"memberids": userID}},
		)
		if err != nil {
			return nil, err
		}
		_, err = fc.UserCollection.DeleteOne(sc, bson.M{"_id": userID})
		return nil, err
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "Profile deleted successfully"})
}
