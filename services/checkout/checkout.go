// Package checkout implements the payment flow shared by the shop, sitter
// booking, consultation, donation and daycare surfaces.
package checkout

import (
	"errors"
	"fmt"
	"math"
	"time"

	"parenthub/config"
	bookingRepo "parenthub/database/repository/booking"
	cartRepo "parenthub/database/repository/cart"
	catalogRepo "parenthub/database/repository/catalog"
	historyRepo "parenthub/database/repository/history"
	userRepo "parenthub/database/repository/user"
	"parenthub/models"
	"parenthub/services/schedule"
	"parenthub/utils"

	"go.uber.org/zap"
)

// Wallet point rates, fraction of the grand total.
const (
	internalPointRate = 0.02
	externalPointRate = 0.01
)

// ErrNoPaymentMethod is returned by ProcessPayment when no method was selected.
var ErrNoPaymentMethod = errors.New("no payment method selected")

// MsgInsufficientBalance is the user-facing message for a declined wallet debit.
const MsgInsufficientBalance = "Saldo tidak mencukupi."

// Session is one prepared checkout. A session is created by a Prepare* call,
// priced, given a payment method, and then paid exactly once.
type Session struct {
	UserID      string                  `json:"userId"`
	Type        models.CheckoutType     `json:"type"`
	Items       []models.CartItem       `json:"items"`
	ResourceID  string                  `json:"resourceId,omitempty"`
	BookingDate string                  `json:"bookingDate,omitempty"`
	BookingTime string                  `json:"bookingTime,omitempty"`
	PaymentType string                  `json:"paymentType,omitempty"`
	State       models.TransactionState `json:"state"`
	Message     string                  `json:"message,omitempty"`
}

// Subtotal is the sum of line-item prices times quantities.
func (s *Session) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// AdminFee is the flat fee added to every checkout.
func (s *Session) AdminFee() float64 {
	return config.AppConfig.AdminFee
}

// Total is the amount the user pays: subtotal plus the flat admin fee.
func (s *Session) Total() float64 {
	return s.Subtotal() + s.AdminFee()
}

// CheckoutService prepares and settles checkouts.
type CheckoutService interface {
	PrepareCart(userID string) (*Session, error)
	PrepareDirectBuy(userID, productID string) (*Session, error)
	PrepareSitter(userID, sitterID, date, timeLabel string) (*Session, error)
	PrepareConsultation(userID, doctorID, date, timeLabel string) (*Session, error)
	PrepareDonation(userID, donationID string, nominal float64) (*Session, error)
	PrepareDaycare(userID, daycareID, startDate string) (*Session, error)

	// ProcessPayment settles the session: it debits the wallet (internal
	// method only), awards points, writes one history record per line item
	// and applies each item's single side effect. The session ends in
	// Success or Failed.
	ProcessPayment(session *Session) error
}

// DefaultCheckoutService implements CheckoutService on the repositories.
type DefaultCheckoutService struct {
	Users     userRepo.UserRepository
	Cart      cartRepo.CartRepository
	History   historyRepo.HistoryRepository
	Products  catalogRepo.ProductRepository
	Sitters   catalogRepo.SitterRepository
	Doctors   catalogRepo.DoctorRepository
	Daycares  catalogRepo.DaycareRepository
	Donations catalogRepo.DonationRepository

	// Separate collections: sitter bookings and consultation bookings never
	// share a calendar.
	SitterBookings bookingRepo.BookingRepository
	DoctorBookings bookingRepo.BookingRepository

	// Now is the clock used for history dates; tests override it.
	Now func() time.Time
}

func (s *DefaultCheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// newSession starts a fresh state machine run. Payment method, state, error
// message and booking details never survive from a previous preparation.
func newSession(userID string, checkoutType models.CheckoutType) *Session {
	return &Session{
		UserID: userID,
		Type:   checkoutType,
		State:  models.TransactionIdle,
	}
}

// PrepareCart snapshots the user's selected cart items into a session. The
// snapshot is immutable: cart edits after preparation do not change what is
// paid for.
func (s *DefaultCheckoutService) PrepareCart(userID string) (*Session, error) {
	items, err := s.Cart.GetSelectedItems(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no cart items selected")
	}

	session := newSession(userID, models.CheckoutCart)
	session.Items = items
	return session, nil
}

// PrepareDirectBuy builds a single-line session for one unit of the product.
func (s *DefaultCheckoutService) PrepareDirectBuy(userID, productID string) (*Session, error) {
	product, err := s.Products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	session := newSession(userID, models.CheckoutDirectBuy)
	session.Items = []models.CartItem{{
		ID:        product.ID,
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		ImageURL:  product.MainImage(),
		Price:     product.Price,
		Quantity:  1,
		Selected:  true,
	}}
	return session, nil
}

// PrepareSitter builds a session for one sitter visit on date at timeLabel.
func (s *DefaultCheckoutService) PrepareSitter(userID, sitterID, date, timeLabel string) (*Session, error) {
	sitter, err := s.Sitters.GetByID(sitterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sitter: %w", err)
	}
	if date == "" || timeLabel == "" {
		return nil, fmt.Errorf("booking date and time are required")
	}

	session := newSession(userID, models.CheckoutSitter)
	session.ResourceID = sitter.ID
	session.BookingDate = date
	session.BookingTime = timeLabel
	session.Items = []models.CartItem{{
		ID:        sitter.ID,
		UserID:    userID,
		ProductID: sitter.ID,
		Name:      sitter.Name,
		ImageURL:  sitter.ImageURL,
		Price:     sitter.Price,
		Quantity:  1,
		Selected:  true,
	}}
	return session, nil
}

// PrepareConsultation builds a session for one consultation slot with the doctor.
func (s *DefaultCheckoutService) PrepareConsultation(userID, doctorID, date, timeLabel string) (*Session, error) {
	doctor, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}
	if date == "" || timeLabel == "" {
		return nil, fmt.Errorf("booking date and time are required")
	}

	session := newSession(userID, models.CheckoutConsultation)
	session.ResourceID = doctor.ID
	session.BookingDate = date
	session.BookingTime = timeLabel
	session.Items = []models.CartItem{{
		ID:        doctor.ID,
		UserID:    userID,
		ProductID: doctor.ID,
		Name:      doctor.Name,
		ImageURL:  doctor.ImageURL,
		Price:     doctor.Price,
		Quantity:  1,
		Selected:  true,
	}}
	return session, nil
}

// PrepareDonation builds a session donating nominal to the campaign.
func (s *DefaultCheckoutService) PrepareDonation(userID, donationID string, nominal float64) (*Session, error) {
	if nominal <= 0 {
		return nil, fmt.Errorf("donation amount must be positive")
	}
	donation, err := s.Donations.GetByID(donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donation campaign: %w", err)
	}

	session := newSession(userID, models.CheckoutDonation)
	session.ResourceID = donation.ID
	session.Items = []models.CartItem{{
		ID:        donation.ID,
		UserID:    userID,
		ProductID: donation.ID,
		Name:      donation.Title,
		ImageURL:  donation.ImageURL,
		Price:     nominal,
		Quantity:  1,
		Selected:  true,
	}}
	return session, nil
}

// PrepareDaycare builds a session for a daycare enrollment starting startDate.
func (s *DefaultCheckoutService) PrepareDaycare(userID, daycareID, startDate string) (*Session, error) {
	daycare, err := s.Daycares.GetByID(daycareID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daycare: %w", err)
	}
	if startDate == "" {
		return nil, fmt.Errorf("start date is required")
	}

	session := newSession(userID, models.CheckoutDaycare)
	session.ResourceID = daycare.ID
	session.BookingDate = startDate
	session.Items = []models.CartItem{{
		ID:        daycare.ID,
		UserID:    userID,
		ProductID: daycare.ID,
		Name:      daycare.Name,
		ImageURL:  daycare.ImageURL,
		Price:     daycare.Price,
		Quantity:  1,
		Selected:  true,
	}}
	return session, nil
}

// ProcessPayment runs the settlement. The wallet debit is the only atomic
// step: it either debits total and credits points or fails without a write.
// The per-item history records and side effects that follow are applied one
// by one; an individual failure is logged and the loop continues, so a crash
// mid-loop can leave some effects applied and others not.
func (s *DefaultCheckoutService) ProcessPayment(session *Session) error {
	if session.PaymentType == "" {
		return ErrNoPaymentMethod
	}
	session.State = models.TransactionLoading
	session.Message = ""

	total := session.Total()
	debit := total
	points := int64(math.Floor(total * internalPointRate))
	if session.PaymentType != models.PaymentTypeInternal {
		// External methods record the purchase without moving wallet money;
		// they earn points at the lower rate.
		debit = 0
		points = int64(math.Floor(total * externalPointRate))
	}

	if err := s.Users.ProcessTransaction(session.UserID, debit, points); err != nil {
		session.State = models.TransactionFailed
		if errors.Is(err, userRepo.ErrInsufficientBalance) {
			session.Message = MsgInsufficientBalance
		} else {
			session.Message = "Pembayaran gagal, coba lagi."
		}
		return err
	}

	logger := utils.GetLogger()
	date := schedule.FormatDate(s.now())

	for _, item := range session.Items {
		historyID := utils.GenerateHistoryID()
		record := &models.HistoryTransaction{
			ID:        historyID,
			UserID:    session.UserID,
			ProductID: item.ProductID,
			HistoryID: historyID,
			Title:     item.Name,
			Date:      date,
			Total:     recordTotal(session, item),
			Status:    models.TransactionStatusSuccess,
			ImageURL:  item.ImageURL,
			Category:  categoryFor(session.Type),
		}

		if err := s.History.Create(record); err != nil {
			logger.Error("failed to write history record",
				zap.String("userID", session.UserID), zap.String("productID", item.ProductID), zap.Error(err))
		}
		s.applySideEffect(session, item, logger)
	}

	if session.Type == models.CheckoutCart {
		ids := make([]string, 0, len(session.Items))
		for _, item := range session.Items {
			ids = append(ids, item.ID)
		}
		if err := s.Cart.DeleteItems(session.UserID, ids); err != nil {
			logger.Error("failed to clear purchased cart items",
				zap.String("userID", session.UserID), zap.Error(err))
		}
	}

	session.State = models.TransactionSuccess
	return nil
}

// recordTotal carries the legacy display rule: a single-line checkout records
// the grand total (fee included), a multi-line one records each item's subtotal.
func recordTotal(session *Session, item models.CartItem) float64 {
	if len(session.Items) == 1 {
		return session.Total()
	}
	return item.Price * float64(item.Quantity)
}

func categoryFor(checkoutType models.CheckoutType) string {
	switch checkoutType {
	case models.CheckoutSitter:
		return models.CategorySitter
	case models.CheckoutConsultation:
		return models.CategoryConsultation
	case models.CheckoutDonation:
		return models.CategoryDonation
	case models.CheckoutDaycare:
		return models.CategoryDaycare
	default:
		return models.CategoryShopping
	}
}

// applySideEffect performs the one counter or reservation tied to the item's
// checkout context. Failures are logged, never surfaced: the payment already
// settled and the user must still see a successful checkout.
func (s *DefaultCheckoutService) applySideEffect(session *Session, item models.CartItem, logger *zap.Logger) {
	var err error
	switch session.Type {
	case models.CheckoutSitter:
		err = s.Sitters.IncrementCompletedJobs(session.ResourceID)
		if err == nil && session.BookingDate != "" && session.BookingTime != "" {
			err = s.SitterBookings.ReserveSlot(session.ResourceID, session.BookingDate, session.BookingTime)
		}
	case models.CheckoutConsultation:
		err = s.Doctors.IncrementPatientCount(session.ResourceID)
		if err == nil && session.BookingDate != "" && session.BookingTime != "" {
			err = s.DoctorBookings.ReserveSlot(session.ResourceID, session.BookingDate, session.BookingTime)
		}
	case models.CheckoutDonation:
		err = s.Donations.AddToCurrentAmount(session.ResourceID, item.Price*float64(item.Quantity))
	case models.CheckoutDaycare:
		err = s.Daycares.IncrementBookingCount(session.ResourceID)
	default:
		err = s.Products.IncrementSold(item.ProductID, item.Quantity)
	}
	if err != nil {
		logger.Error("post-payment side effect failed",
			zap.String("type", string(session.Type)), zap.String("productID", item.ProductID), zap.Error(err))
	}
}
