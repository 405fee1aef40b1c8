package handlers

import (
	"net/http"
	"strconv"
	"time"

	"parenthub/models"
	"parenthub/services/catalog"
	"parenthub/services/schedule"

	"github.com/gin-gonic/gin"
)

// parseLocation reads optional lat/lon query params.
func parseLocation(c *gin.Context) (float64, float64, bool) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// ListProductsHandler lists products, filtered by ?q= or ?category=.
func ListProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if slug := c.Query("category"); slug != "" {
			c.JSON(http.StatusOK, svc.ProductsByCategory(slug))
			return
		}
		c.JSON(http.StatusOK, svc.ListProducts(c.Query("q")))
	}
}

// GetProductHandler returns one product.
func GetProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Product(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// AddProductHandler creates a shop listing.
func AddProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.AddProduct(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// ListSittersHandler lists sitters, nearest first when lat/lon are given.
func ListSittersHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, lon, ok := parseLocation(c)
		c.JSON(http.StatusOK, svc.ListSitters(lat, lon, ok))
	}
}

// GetSitterHandler returns one sitter.
func GetSitterHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sitter, err := svc.Sitter(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sitter not found"})
			return
		}
		c.JSON(http.StatusOK, sitter)
	}
}

// ListDoctorsHandler lists consultation doctors.
func ListDoctorsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListDoctors())
	}
}

// GetDoctorHandler returns one doctor.
func GetDoctorHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctor, err := svc.Doctor(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusOK, doctor)
	}
}

// ListDaycaresHandler lists daycares, nearest first when lat/lon are given.
func ListDaycaresHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, lon, ok := parseLocation(c)
		c.JSON(http.StatusOK, svc.ListDaycares(lat, lon, ok))
	}
}

// GetDaycareHandler returns one daycare.
func GetDaycareHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		daycare, err := svc.Daycare(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daycare not found"})
			return
		}
		c.JSON(http.StatusOK, daycare)
	}
}

// ListDonationsHandler lists donation campaigns.
func ListDonationsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListDonations())
	}
}

// GetDonationHandler returns one campaign and counts the view.
func GetDonationHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		donation, err := svc.Donation(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation campaign not found"})
			return
		}
		c.JSON(http.StatusOK, donation)
	}
}

// BookingDatesHandler returns the 7-day date picker entries.
func BookingDatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, schedule.NextSevenDays(time.Now()))
	}
}

// slotsHandler returns availability for one resource on ?date=YYYY-MM-DD.
func slotsHandler(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
			return
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusOK, svc.AvailableSlots(c.Param("id"), date, time.Now()))
	}
}

// SitterSlotsHandler returns a sitter's slot availability.
func SitterSlotsHandler(svc *schedule.Service) gin.HandlerFunc {
	return slotsHandler(svc)
}

// DoctorSlotsHandler returns a doctor's slot availability.
func DoctorSlotsHandler(svc *schedule.Service) gin.HandlerFunc {
	return slotsHandler(svc)
}
