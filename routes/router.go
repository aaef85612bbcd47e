package routes

import (
	"github.com/gin-gonic/gin"

	"evoting-backend/controllers"
	"evoting-backend/middleware"
)

func SetupRouter(h *controllers.Handler) *gin.Engine {
	router := gin.Default()

	// Auth routes
	router.POST("/register", h.RegisterVoter)
	router.POST("/login", h.LoginVoter)

	// Registration workflow
	router.POST("/send-otp", h.SendOTP)
	router.POST("/verify-otp", h.VerifyOTP)
	router.POST("/verify-aadhar", h.VerifyAadhar)
	router.POST("/check-registration", h.CheckRegistration)
	router.POST("/update-registration", h.UpdateRegistration)
	router.GET("/voter-status", h.VoterStatus)

	// Candidates and voting
	router.GET("/candidates", h.GetCandidates)
	router.POST("/candidates", h.CreateCandidate)
	router.POST("/vote", h.CastVote)

	// Election administration
	router.GET("/election-phase", h.GetElectionPhase)
	router.POST("/election-phase", h.SetElectionPhase)
	router.GET("/election-results", h.ElectionResults)
	router.GET("/registered-users", h.RegisteredUsers)
	router.POST("/register-admin", h.RegisterAdmin)

	// Routes requiring a login token
	authRoutes := router.Group("/")
	authRoutes.Use(middleware.JWTAuthMiddleware(h.JWTSecret))
	authRoutes.GET("/profile", h.Profile)

	// Define a basic route to test the server
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to the E-Voting Backend!",
		})
	})

	return router
}
