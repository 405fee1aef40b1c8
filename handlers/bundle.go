package handlers

import (
	"parenthub/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler into one struct the routes
// register from.
type HandlerBundle struct {
	Sessions user.SessionStore

	// Auth endpoints
	RegisterHandler     gin.HandlerFunc
	LoginHandler        gin.HandlerFunc
	GoogleSignInHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Catalog endpoints
	ListProductsHandler  gin.HandlerFunc
	GetProductHandler    gin.HandlerFunc
	AddProductHandler    gin.HandlerFunc
	ListSittersHandler   gin.HandlerFunc
	GetSitterHandler     gin.HandlerFunc
	ListDoctorsHandler   gin.HandlerFunc
	GetDoctorHandler     gin.HandlerFunc
	ListDaycaresHandler  gin.HandlerFunc
	GetDaycareHandler    gin.HandlerFunc
	ListDonationsHandler gin.HandlerFunc
	GetDonationHandler   gin.HandlerFunc
	BookingDatesHandler  gin.HandlerFunc
	SitterSlotsHandler   gin.HandlerFunc
	DoctorSlotsHandler   gin.HandlerFunc

	// Cart endpoints
	AddToCartHandler          gin.HandlerFunc
	ListCartHandler           gin.HandlerFunc
	UpdateCartQuantityHandler gin.HandlerFunc
	SelectCartItemHandler     gin.HandlerFunc
	DeleteCartItemsHandler    gin.HandlerFunc
	WatchCartHandler          gin.HandlerFunc

	// Checkout endpoints
	CheckoutQuoteHandler gin.HandlerFunc
	CheckoutPayHandler   gin.HandlerFunc

	// History endpoints
	ListHistoryHandler  gin.HandlerFunc
	SubmitReviewHandler gin.HandlerFunc
	WatchHistoryHandler gin.HandlerFunc

	// Chat endpoints
	ConsultationRoomHandler  gin.HandlerFunc
	ConsultationSendHandler  gin.HandlerFunc
	WatchConsultationHandler gin.HandlerFunc
	AssistantThreadHandler   gin.HandlerFunc
	AssistantAskHandler      gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc
}
