package schedule

import (
	"fmt"
	"time"

	"parenthub/config"
	bookingRepo "parenthub/database/repository/booking"
	"parenthub/models"
	"parenthub/utils"

	"go.uber.org/zap"
)

// Default operating window for bookable services, hours of day, inclusive.
const (
	OpenHour  = 9
	CloseHour = 20
)

// windowHours returns the configured operating window, falling back to the
// defaults when no config is loaded.
func windowHours() (int, int) {
	open, close := config.AppConfig.BookingOpenHour, config.AppConfig.BookingCloseHour
	if open >= close {
		return OpenHour, CloseHour
	}
	return open, close
}

// GenerateTimeSlots produces the ordered hourly slots of the operating window.
// On today, slots at or before the current hour are marked unavailable; on any
// other day every slot is available. Pure except for the injected clock.
func GenerateTimeSlots(isToday bool, now time.Time) []models.TimeSlot {
	openHour, closeHour := windowHours()
	slots := make([]models.TimeSlot, 0, closeHour-openHour+1)
	currentHour := now.Hour()

	for hour := openHour; hour <= closeHour; hour++ {
		available := true
		if isToday {
			available = hour > currentHour
		}
		slots = append(slots, models.TimeSlot{
			Time:      fmt.Sprintf("%02d.00", hour),
			Available: available,
		})
	}
	return slots
}

// Service resolves slot availability for a bookable resource by masking the
// generated slots with the times already reserved. Recomputed on every date
// selection; never cached.
type Service struct {
	Bookings bookingRepo.BookingRepository
}

// AvailableSlots returns the slot list for resource+date with already-booked
// times marked unavailable. A booked-times fetch failure degrades to an empty
// set: the user sees the generated availability and the failure is logged.
func (s *Service) AvailableSlots(resourceID, date string, now time.Time) []models.TimeSlot {
	isToday := date == now.Format("2006-01-02")
	slots := GenerateTimeSlots(isToday, now)

	booked, err := s.Bookings.ListBookedTimes(resourceID, date)
	if err != nil {
		utils.GetLogger().Warn("failed to fetch booked times",
			zap.String("resourceID", resourceID), zap.String("date", date), zap.Error(err))
		return slots
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}
	for i := range slots {
		if taken[slots[i].Time] {
			slots[i].Available = false
		}
	}
	return slots
}
