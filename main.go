package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/NeedlessCat/SDPJSS-ALL/controllers"
	"github.com/NeedlessCat/SDPJSS-ALL/routes"
	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	client := utils.ConnectDB()

	emailService := utils.NewEmailService()
	if emailService == nil {
		log.Println("POSTMARK_API_TOKEN not set, donation receipts disabled")
	}

	gateway := utils.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)

	var uploader utils.ImageUploader
	if cld, err := utils.NewCloudinaryUploader(); err != nil {
		log.Println("Cloudinary not configured, image uploads disabled:", err)
	} else {
		uploader = cld
	}

	admins := utils.NewAdminStore()
	if err := admins.Add(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal("Admin credentials not configured: ", err)
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Family:        controllers.NewFamilyController(client),
		User:          controllers.NewUserController(client, uploader),
		Donation:      controllers.NewDonationController(client, gateway, emailService),
		Job:           controllers.NewJobController(client),
		Staff:         controllers.NewStaffController(client),
		Advertisement: controllers.NewAdvertisementController(client),
		Notice:        controllers.NewNoticeController(client),
		Team:          controllers.NewTeamController(client, uploader),
		Admin:         controllers.NewAdminController(client, admins),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("Server running on port", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
