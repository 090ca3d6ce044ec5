// controllers/user.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
	"github.com/NeedlessCat/SDPJSS-ALL/models"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// UserController handles member login and profile management
type UserController struct {
	UserCollection *mongo.Collection
	Uploader       utils.ImageUploader
}

// NewUserController creates a new UserController
func NewUserController(client *mongo.Client, uploader utils.ImageUploader) *UserController {
	return &UserController{
		UserCollection: client.Database("sdpjss").Collection("users"),
		Uploader:       uploader,
	}
}

// Login handles member authentication by username and password
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := uc.UserCollection.FindOne(ctx, bson.M{"username": creds.Username}).Decode(&user)
	if err != nil {
		respondError(w, http.StatusNotFound, "User does not exist")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utoken, err := utils.GenerateToken(user.ID.Hex(), utils.RoleUser)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"utoken": utoken})
}

// GetProfile retrieves the authenticated member's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
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

	var user models.User
	err = uc.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	respondSuccess(w, http.StatusOK, map[string]interface{}{"userData": user})
}

// UpdateProfile updates the member's profile. The request is a multipart
// form; nested fields arrive as JSON strings and the optional "image" file
// is forwarded to the image host.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	req := memberProfileRequest{
		UserID:      claims.ID,
		FullName:    r.FormValue("fullname"),
		FatherID:    r.FormValue("fatherid"),
		Mother:      r.FormValue("mother"),
		Gender:      r.FormValue("gender"),
		DOB:         r.FormValue("dob"),
		BloodGroup:  r.FormValue("bloodgroup"),
		Username:    r.FormValue("username"),
		HealthIssue: r.FormValue("healthissue"),
		IsLive:      r.FormValue("islive"),
	}
	for field, dst := range map[string]interface{}{
		"marriage":   &req.Marriage,
		"contact":    &req.Contact,
		"address":    &req.Address,
		"education":  &req.Education,
		"profession": &req.Profession,
	} {
		if raw := r.FormValue(field); raw != "" {
			if err := json.Unmarshal([]byte(raw), dst); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid "+field+" data")
				return
			}
		}
	}

	if req.missingFields(false) {
		respondError(w, http.StatusBadRequest, "User Update Data Missing")
		return
	}
	if !validEmail(req.Contact.Email) {
		respondError(w, http.StatusBadRequest, "Enter a valid email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	update := req.profileUpdate()

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if uc.Uploader == nil {
			respondError(w, http.StatusInternalServerError, "Image uploads are not configured")
			return
		}
		imageURL, err := uc.Uploader.UploadImage(ctx, file, header.Filename)
		if err != nil {
			log.Println("Image upload failed:", err)
			respondError(w, http.StatusBadGateway, "Failed to upload image")
			return
		}
		update["image"] = imageURL
	}

	result, err := uc.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": update})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"message": "User Profile Updated Successfully"})
}
