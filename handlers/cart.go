package handlers

import (
	"context"
	"net/http"

	"parenthub/middleware"
	"parenthub/models"
	"parenthub/services/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddToCartHandler puts a product in the caller's cart.
func AddToCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		item, err := svc.AddProduct(middleware.UserID(c), req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// ListCartHandler returns the caller's cart lines.
func ListCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(middleware.UserID(c))
		if err != nil {
			getLogger(c).Error("failed to list cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartQuantityHandler sets one line's quantity.
func UpdateCartQuantityHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.UpdateQuantity(middleware.UserID(c), c.Param("id"), req.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

type selectItemRequest struct {
	Selected *bool `json:"selected" binding:"required"`
}

// SelectCartItemHandler marks one line in or out of the next checkout.
func SelectCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req selectItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.SetSelected(middleware.UserID(c), c.Param("id"), *req.Selected); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

type deleteItemsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// DeleteCartItemsHandler removes the given lines.
func DeleteCartItemsHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteItemsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.Remove(middleware.UserID(c), req.IDs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// WatchCartHandler streams cart snapshots over a websocket.
func WatchCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		streamSnapshots(c, func(ctx context.Context) (<-chan []models.CartItem, error) {
			return svc.Watch(ctx, userID)
		})
	}
}
