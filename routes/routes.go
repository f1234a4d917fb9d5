package routes

import (
	userRepo "jobmate/database/repository/user"
	"jobmate/handlers"
	"jobmate/middleware"
	"jobmate/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *handlers.AuthHandler
	Employee *handlers.EmployeeHandler
	Booking  *handlers.BookingHandler
	Review   *handlers.ReviewHandler
	Skill    *handlers.SkillHandler
	Admin    *handlers.AdminHandler
}

// RegisterRoutes registers all endpoints with the assembled handler bundle.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.Use(cors.Default())

	api := r.Group("/api")

	// Public endpoints.
	api.POST("/auth/register", h.Auth.RegisterHandler)
	api.POST("/auth/signin", h.Auth.SignInHandler)
	api.GET("/employees", h.Employee.BrowseHandler)
	api.GET("/employees/:id/reviews", h.Employee.ListReviewsHandler)
	api.GET("/skills", h.Skill.ListHandler)

	// Authenticated endpoints.
	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	{
		auth.POST("/employees/match", h.Employee.MatchHandler)

		auth.PUT("/profile/employee",
			middleware.RequireRole(models.RoleEmployee),
			h.Employee.UpdateProfileHandler)

		auth.POST("/bookings",
			middleware.RequireRole(models.RoleCustomer),
			h.Booking.CreateHandler)
		auth.GET("/bookings", h.Booking.ListHandler)
		auth.GET("/bookings/:id", h.Booking.GetHandler)
		auth.POST("/bookings/:id/actions/:action", h.Booking.ActionHandler)
		auth.POST("/bookings/:id/work-proofs", h.Booking.AddWorkProofHandler)
		auth.GET("/bookings/:id/work-proofs", h.Booking.ListWorkProofsHandler)

		auth.POST("/bookings/:id/review",
			middleware.RequireRole(models.RoleCustomer),
			h.Review.CreateHandler)
		auth.GET("/bookings/:id/review", h.Review.GetForBookingHandler)

		adminGroup := auth.Group("/admin")
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminGroup.GET("/dashboard", h.Admin.DashboardHandler)
			adminGroup.POST("/employees/:id/verify", h.Admin.VerifyEmployeeHandler)
			adminGroup.POST("/skills", h.Skill.CreateHandler)
		}
	}
}
