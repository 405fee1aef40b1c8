package bookingRepo

// BookingRepository persists reserved (resource, date, time) slots.
type BookingRepository interface {
	// ListBookedTimes returns the time labels already reserved for the
	// resource on the given calendar day.
	ListBookedTimes(resourceID, date string) ([]string, error)

	// ReserveSlot writes the booking keyed by "resourceID_date_time". The
	// deterministic key is the only double-booking guard: two clients acting
	// on the same stale availability race at the storage layer and the later
	// write silently replaces the earlier one.
	ReserveSlot(resourceID, date, timeLabel string) error
}
