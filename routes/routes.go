package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NeedlessCat/SDPJSS-ALL/controllers"
	"github.com/NeedlessCat/SDPJSS-ALL/middleware"
)

// Controllers bundles every handler group mounted by RegisterRoutes.
type Controllers struct {
	Family        *controllers.FamilyController
	User          *controllers.UserController
	Donation      *controllers.DonationController
	Job           *controllers.JobController
	Staff         *controllers.StaffController
	Advertisement *controllers.AdvertisementController
	Notice        *controllers.NoticeController
	Team          *controllers.TeamController
	Admin         *controllers.AdminController
}

// RegisterRoutes mounts the family, user and admin APIs on the router.
func RegisterRoutes(r *mux.Router, c Controllers) {
	// Family head endpoints.
	family := r.PathPrefix("/api/family").Subrouter()
	family.HandleFunc("/register", c.Family.RegisterFamily).Methods(http.MethodPost)
	family.HandleFunc("/login", c.Family.LoginFamily).Methods(http.MethodPost)

	familyAuth := family.NewRoute().Subrouter()
	familyAuth.Use(middleware.AuthFamily)
	familyAuth.HandleFunc("/get-profile", c.Family.GetProfile).Methods(http.MethodGet)
	familyAuth.HandleFunc("/update-profile", c.Family.UpdateProfile).Methods(http.MethodPost)
	familyAuth.HandleFunc("/add-member", c.Family.AddMember).Methods(http.MethodPost)
	familyAuth.HandleFunc("/complete-profile", c.Family.CompleteProfile).Methods(http.MethodPost)
	familyAuth.HandleFunc("/edit-profile", c.Family.EditProfile).Methods(http.MethodPost)
	familyAuth.HandleFunc("/delete-member", c.Family.DeleteMember).Methods(http.MethodDelete)

	// Member endpoints.
	user := r.PathPrefix("/api/user").Subrouter()
	user.HandleFunc("/login", c.User.Login).Methods(http.MethodPost)
	user.HandleFunc("/notices", c.Notice.GetNotices).Methods(http.MethodGet)
	user.HandleFunc("/team-members", c.Team.GetAllTeamMembers).Methods(http.MethodGet)

	userAuth := user.NewRoute().Subrouter()
	userAuth.Use(middleware.AuthUser)
	userAuth.HandleFunc("/get-profile", c.User.GetProfile).Methods(http.MethodGet)
	userAuth.HandleFunc("/update-profile", c.User.UpdateProfile).Methods(http.MethodPost)

	userAuth.HandleFunc("/create-donation-order", c.Donation.CreateDonationOrder).Methods(http.MethodPost)
	userAuth.HandleFunc("/verify-donation-payment", c.Donation.VerifyDonationPayment).Methods(http.MethodPost)
	userAuth.HandleFunc("/retry-donation-payment", c.Donation.RetryDonationPayment).Methods(http.MethodPost)
	userAuth.HandleFunc("/delete-donation/{donationId}", c.Donation.DeleteDonation).Methods(http.MethodDelete)
	userAuth.HandleFunc("/my-donations", c.Donation.GetUserDonations).Methods(http.MethodGet)
	userAuth.HandleFunc("/get-all-donations", c.Donation.GetAllDonations).Methods(http.MethodGet)
	userAuth.HandleFunc("/donation-stats", c.Donation.GetDonationStats).Methods(http.MethodGet)

	userAuth.HandleFunc("/create-job-opening", c.Job.CreateJobOpening).Methods(http.MethodPost)
	userAuth.HandleFunc("/my-job-openings", c.Job.GetJobOpeningsByUser).Methods(http.MethodGet)
	userAuth.HandleFunc("/all-job-openings", c.Job.GetAllJobOpenings).Methods(http.MethodGet)
	userAuth.HandleFunc("/edit-job-opening", c.Job.EditJobOpening).Methods(http.MethodPost)
	userAuth.HandleFunc("/delete-job-opening", c.Job.DeleteJobOpening).Methods(http.MethodPost)
	userAuth.HandleFunc("/update-job-status", c.Job.UpdateJobStatus).Methods(http.MethodPost)

	userAuth.HandleFunc("/create-staff-requirement", c.Staff.CreateStaffRequirement).Methods(http.MethodPost)
	userAuth.HandleFunc("/my-staff-requirements", c.Staff.GetStaffRequirementsByUser).Methods(http.MethodGet)
	userAuth.HandleFunc("/all-staff-requirements", c.Staff.GetAllStaffRequirements).Methods(http.MethodGet)
	userAuth.HandleFunc("/edit-staff-requirement", c.Staff.EditStaffRequirement).Methods(http.MethodPost)
	userAuth.HandleFunc("/delete-staff-requirement", c.Staff.DeleteStaffRequirement).Methods(http.MethodPost)
	userAuth.HandleFunc("/update-staff-status", c.Staff.UpdateStaffStatus).Methods(http.MethodPost)

	userAuth.HandleFunc("/add-advertisement", c.Advertisement.AddAdvertisement).Methods(http.MethodPost)
	userAuth.HandleFunc("/my-advertisements", c.Advertisement.GetMyAdvertisements).Methods(http.MethodGet)
	userAuth.HandleFunc("/all-advertisements", c.Advertisement.GetAllAdvertisements).Methods(http.MethodGet)
	userAuth.HandleFunc("/edit-advertisement", c.Advertisement.EditAdvertisement).Methods(http.MethodPost)
	userAuth.HandleFunc("/delete-advertisement", c.Advertisement.DeleteAdvertisement).Methods(http.MethodPost)
	userAuth.HandleFunc("/update-advertisement-status", c.Advertisement.UpdateAdvertisementStatus).Methods(http.MethodPost)

	// Admin endpoints.
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.HandleFunc("/login", c.Admin.Login).Methods(http.MethodPost)

	adminAuth := admin.NewRoute().Subrouter()
	adminAuth.Use(middleware.AuthAdmin)
	adminAuth.HandleFunc("/family-list", c.Admin.GetFamilyList).Methods(http.MethodGet)
	adminAuth.HandleFunc("/user-list", c.Admin.GetUserList).Methods(http.MethodGet)
	adminAuth.HandleFunc("/job-opening-list", c.Admin.GetJobOpeningList).Methods(http.MethodGet)
	adminAuth.HandleFunc("/staff-requirement-list", c.Admin.GetStaffRequirementList).Methods(http.MethodGet)
	adminAuth.HandleFunc("/advertisement-list", c.Admin.GetAdvertisementList).Methods(http.MethodGet)
	adminAuth.HandleFunc("/update-user-status", c.Admin.UpdateUserStatus).Methods(http.MethodPut)

	adminAuth.HandleFunc("/get-all-donations", c.Donation.GetAllDonations).Methods(http.MethodGet)
	adminAuth.HandleFunc("/donation-stats", c.Donation.GetDonationStats).Methods(http.MethodGet)

	adminAuth.HandleFunc("/family-count", c.Admin.GetFamilyCount).Methods(http.MethodGet)
	adminAuth.HandleFunc("/user-count", c.Admin.GetUserCount).Methods(http.MethodGet)
	adminAuth.HandleFunc("/donation-by-year", c.Admin.GetDonationsByYear).Methods(http.MethodGet)
	adminAuth.HandleFunc("/available-years", c.Admin.GetAvailableYears).Methods(http.MethodGet)
	adminAuth.HandleFunc("/admin-stats", c.Admin.GetAdminStats).Methods(http.MethodGet)

	adminAuth.HandleFunc("/notices", c.Notice.GetNotices).Methods(http.MethodGet)
	adminAuth.HandleFunc("/add-notice", c.Notice.AddNotice).Methods(http.MethodPost)
	adminAuth.HandleFunc("/update-notice/{noticeId}", c.Notice.UpdateNotice).Methods(http.MethodPut)
	adminAuth.HandleFunc("/delete-notice/{noticeId}", c.Notice.DeleteNotice).Methods(http.MethodDelete)

	adminAuth.HandleFunc("/team-members", c.Team.GetAllTeamMembers).Methods(http.MethodGet)
	adminAuth.HandleFunc("/add-team-member", c.Team.AddTeamMember).Methods(http.MethodPost)
	adminAuth.HandleFunc("/update-team-member/{memberId}", c.Team.UpdateTeamMember).Methods(http.MethodPut)
	adminAuth.HandleFunc("/delete-team-member/{memberId}", c.Team.DeleteTeamMember).Methods(http.MethodDelete)
	adminAuth.HandleFunc("/toggle-team-member/{memberId}", c.Team.ToggleTeamMemberStatus).Methods(http.MethodPatch)
}
