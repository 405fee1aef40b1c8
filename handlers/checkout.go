package handlers

import (
	"errors"
	"net/http"

	userRepo "parenthub/database/repository/user"
	"parenthub/middleware"
	"parenthub/models"
	"parenthub/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// checkoutRequest selects a checkout context and, for pay, a payment method.
type checkoutRequest struct {
	Type        models.CheckoutType `json:"type" binding:"required"`
	ProductID   string              `json:"productId,omitempty"`
	ResourceID  string              `json:"resourceId,omitempty"`
	Date        string              `json:"date,omitempty"`
	Time        string              `json:"time,omitempty"`
	Nominal     float64             `json:"nominal,omitempty"`
	PaymentType string              `json:"paymentType,omitempty"`
}

type checkoutQuote struct {
	Session  *checkout.Session `json:"session"`
	Subtotal float64           `json:"subtotal"`
	AdminFee float64           `json:"adminFee"`
	Total    float64           `json:"total"`
}

func prepare(svc checkout.CheckoutService, userID string, req checkoutRequest) (*checkout.Session, error) {
	switch req.Type {
	case models.CheckoutCart:
		return svc.PrepareCart(userID)
	case models.CheckoutDirectBuy:
		return svc.PrepareDirectBuy(userID, req.ProductID)
	case models.CheckoutSitter:
		return svc.PrepareSitter(userID, req.ResourceID, req.Date, req.Time)
	case models.CheckoutConsultation:
		return svc.PrepareConsultation(userID, req.ResourceID, req.Date, req.Time)
	case models.CheckoutDonation:
		return svc.PrepareDonation(userID, req.ResourceID, req.Nominal)
	case models.CheckoutDaycare:
		return svc.PrepareDaycare(userID, req.ResourceID, req.Date)
	default:
		return nil, errors.New("unknown checkout type")
	}
}

// CheckoutQuoteHandler prices a checkout without paying.
func CheckoutQuoteHandler(svc checkout.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := prepare(svc, middleware.UserID(c), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, checkoutQuote{
			Session:  session,
			Subtotal: session.Subtotal(),
			AdminFee: session.AdminFee(),
			Total:    session.Total(),
		})
	}
}

// CheckoutPayHandler prepares and settles a checkout in one call.
func CheckoutPayHandler(svc checkout.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.PaymentType != models.PaymentTypeInternal && req.PaymentType != models.PaymentTypeExternal {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentType must be internal or external"})
			return
		}

		userID := middleware.UserID(c)
		session, err := prepare(svc, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		session.PaymentType = req.PaymentType

		if err := svc.ProcessPayment(session); err != nil {
			if errors.Is(err, userRepo.ErrInsufficientBalance) {
				c.JSON(http.StatusPaymentRequired, gin.H{"error": session.Message, "session": session})
				return
			}
			getLogger(c).Error("payment failed", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment failed, please try again", "session": session})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
