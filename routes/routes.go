package routes

import (
	"net/http"
	"time"

	"parenthub/handlers"
	"parenthub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup applies CORS and registers every route group.
func Setup(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ParentHub"})
	})
}

// RegisterAuthRoutes registers sign-in and sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/google", hb.GoogleSignInHandler)

		api.POST("/signout", middleware.JWTAuthUserMiddleware(hb.Sessions), hb.SignOutHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.GET("", hb.GetProfileHandler)
		api.PATCH("", hb.UpdateProfileHandler)
	}
}

// RegisterCatalogRoutes registers the browse surfaces. Listings are public;
// creating products requires authentication.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/products", hb.ListProductsHandler)
		api.GET("/products/:id", hb.GetProductHandler)
		api.POST("/products", middleware.JWTAuthUserMiddleware(hb.Sessions), hb.AddProductHandler)

		api.GET("/sitters", hb.ListSittersHandler)
		api.GET("/sitters/:id", hb.GetSitterHandler)
		api.GET("/sitters/:id/slots", hb.SitterSlotsHandler)

		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/doctors/:id", hb.GetDoctorHandler)
		api.GET("/doctors/:id/slots", hb.DoctorSlotsHandler)

		api.GET("/daycares", hb.ListDaycaresHandler)
		api.GET("/daycares/:id", hb.GetDaycareHandler)

		api.GET("/donations", hb.ListDonationsHandler)
		api.GET("/donations/:id", hb.GetDonationHandler)

		api.GET("/booking-dates", hb.BookingDatesHandler)
	}
}

// RegisterCartRoutes registers the cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.GET("", hb.ListCartHandler)
		api.POST("", hb.AddToCartHandler)
		api.PATCH("/:id/quantity", hb.UpdateCartQuantityHandler)
		api.PATCH("/:id/selected", hb.SelectCartItemHandler)
		api.DELETE("", hb.DeleteCartItemsHandler)
		api.GET("/watch", hb.WatchCartHandler)
	}
}

// RegisterCheckoutRoutes registers quoting and payment.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.POST("/quote", hb.CheckoutQuoteHandler)
		api.POST("/pay", hb.CheckoutPayHandler)
	}
}

// RegisterHistoryRoutes registers the transaction history endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/history")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.GET("", hb.ListHistoryHandler)
		api.POST("/:id/review", hb.SubmitReviewHandler)
		api.GET("/watch", hb.WatchHistoryHandler)
	}
}

// RegisterChatRoutes registers consultation rooms and the assistant.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.GET("/consultations/:doctorId/messages", hb.ConsultationRoomHandler)
		api.POST("/consultations/:doctorId/messages", hb.ConsultationSendHandler)
		api.GET("/consultations/:doctorId/watch", hb.WatchConsultationHandler)

		api.GET("/assistant", hb.AssistantThreadHandler)
		api.POST("/assistant/ask", hb.AssistantAskHandler)
	}
}

// RegisterStorageRoutes registers image upload.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
	{
		api.POST("/upload", hb.UploadImageHandler)
	}
}
