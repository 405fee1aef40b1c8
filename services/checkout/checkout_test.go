package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"parenthub/config"
	userRepo "parenthub/database/repository/user"
	"parenthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUserRepo struct {
	balance     float64
	points      int64
	debits      []float64
	lastPoints  int64
	failMessage string
}

func (f *fakeUserRepo) Create(*models.User) error                         { return nil }
func (f *fakeUserRepo) GetByID(string) (*models.User, error)              { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)           { return nil, nil }
func (f *fakeUserRepo) Update(*models.User) error                         { return nil }
func (f *fakeUserRepo) UpdateFields(string, map[string]interface{}) error { return nil }

func (f *fakeUserRepo) ProcessTransaction(id string, amount float64, pointsEarned int64) error {
	if f.failMessage != "" {
		return errors.New(f.failMessage)
	}
	if f.balance < amount {
		return userRepo.ErrInsufficientBalance
	}
	f.balance -= amount
	f.points += pointsEarned
	f.debits = append(f.debits, amount)
	f.lastPoints = pointsEarned
	return nil
}

type fakeCartRepo struct {
	selected []models.CartItem
	deleted  []string
}

func (f *fakeCartRepo) Add(*models.CartItem) error                 { return nil }
func (f *fakeCartRepo) GetItems(string) ([]models.CartItem, error) { return f.selected, nil }
func (f *fakeCartRepo) GetSelectedItems(string) ([]models.CartItem, error) {
	return f.selected, nil
}
func (f *fakeCartRepo) UpdateQuantity(string, string, int) error { return nil }
func (f *fakeCartRepo) SetSelected(string, string, bool) error   { return nil }
func (f *fakeCartRepo) DeleteItems(userID string, cartIDs []string) error {
	f.deleted = append(f.deleted, cartIDs...)
	return nil
}
func (f *fakeCartRepo) Watch(context.Context, string) (<-chan []models.CartItem, error) {
	return nil, errors.New("not supported")
}

type fakeHistoryRepo struct {
	records []models.HistoryTransaction
}

func (f *fakeHistoryRepo) Create(t *models.HistoryTransaction) error {
	f.records = append(f.records, *t)
	return nil
}
func (f *fakeHistoryRepo) GetByID(string) (*models.HistoryTransaction, error) { return nil, nil }
func (f *fakeHistoryRepo) GetByUser(string) ([]models.HistoryTransaction, error) {
	return f.records, nil
}
func (f *fakeHistoryRepo) SetReviewed(string) error { return nil }
func (f *fakeHistoryRepo) Watch(context.Context, string) (<-chan []models.HistoryTransaction, error) {
	return nil, errors.New("not supported")
}

type fakeProductRepo struct {
	products map[string]*models.Product
	sold     map[string]int
}

func (f *fakeProductRepo) Create(*models.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("product %s not found", id)
}
func (f *fakeProductRepo) GetAll() ([]models.Product, error)              { return nil, nil }
func (f *fakeProductRepo) Search(string) ([]models.Product, error)        { return nil, nil }
func (f *fakeProductRepo) GetByCategory(string) ([]models.Product, error) { return nil, nil }
func (f *fakeProductRepo) IncrementSold(id string, quantity int) error {
	if f.sold == nil {
		f.sold = make(map[string]int)
	}
	f.sold[id] += quantity
	return nil
}

type fakeSitterRepo struct {
	sitter        *models.Sitter
	completedJobs int
}

func (f *fakeSitterRepo) Create(*models.Sitter) error { return nil }
func (f *fakeSitterRepo) GetByID(string) (*models.Sitter, error) {
	if f.sitter == nil {
		return nil, errors.New("sitter not found")
	}
	return f.sitter, nil
}
func (f *fakeSitterRepo) GetAll() ([]models.Sitter, error) { return nil, nil }
func (f *fakeSitterRepo) IncrementCompletedJobs(string) error {
	f.completedJobs++
	return nil
}

type fakeDoctorRepo struct {
	doctor       *models.Doctor
	patientCount int
}

func (f *fakeDoctorRepo) GetByID(string) (*models.Doctor, error) {
	if f.doctor == nil {
		return nil, errors.New("doctor not found")
	}
	return f.doctor, nil
}
func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) IncrementPatientCount(string) error {
	f.patientCount++
	return nil
}

type fakeDaycareRepo struct {
	daycare      *models.Daycare
	bookingCount int
}

func (f *fakeDaycareRepo) GetByID(string) (*models.Daycare, error) {
	if f.daycare == nil {
		return nil, errors.New("daycare not found")
	}
	return f.daycare, nil
}
func (f *fakeDaycareRepo) GetAll() ([]models.Daycare, error) { return nil, nil }
func (f *fakeDaycareRepo) IncrementBookingCount(string) error {
	f.bookingCount++
	return nil
}

type fakeDonationRepo struct {
	donation *models.Donation
	raised   float64
}

func (f *fakeDonationRepo) GetByID(string) (*models.Donation, error) {
	if f.donation == nil {
		return nil, errors.New("donation not found")
	}
	return f.donation, nil
}
func (f *fakeDonationRepo) GetAll() ([]models.Donation, error) { return nil, nil }
func (f *fakeDonationRepo) AddToCurrentAmount(id string, amount float64) error {
	f.raised += amount
	return nil
}
func (f *fakeDonationRepo) IncrementViewCount(string) error { return nil }

type fakeBookingRepo struct {
	reserved []string
}

func (f *fakeBookingRepo) ListBookedTimes(string, string) ([]string, error) { return nil, nil }
func (f *fakeBookingRepo) ReserveSlot(resourceID, date, timeLabel string) error {
	f.reserved = append(f.reserved, fmt.Sprintf("%s_%s_%s", resourceID, date, timeLabel))
	return nil
}

// --- helpers ---

type fixtures struct {
	users     *fakeUserRepo
	cart      *fakeCartRepo
	history   *fakeHistoryRepo
	products  *fakeProductRepo
	sitters   *fakeSitterRepo
	doctors   *fakeDoctorRepo
	daycares  *fakeDaycareRepo
	donations *fakeDonationRepo
	sitterBk  *fakeBookingRepo
	doctorBk  *fakeBookingRepo
	svc       *DefaultCheckoutService
}

func newFixtures(balance float64) *fixtures {
	config.AppConfig.AdminFee = 7000

	f := &fixtures{
		users:     &fakeUserRepo{balance: balance},
		cart:      &fakeCartRepo{},
		history:   &fakeHistoryRepo{},
		products:  &fakeProductRepo{products: map[string]*models.Product{}},
		sitters:   &fakeSitterRepo{},
		doctors:   &fakeDoctorRepo{},
		daycares:  &fakeDaycareRepo{},
		donations: &fakeDonationRepo{},
		sitterBk:  &fakeBookingRepo{},
		doctorBk:  &fakeBookingRepo{},
	}
	f.svc = &DefaultCheckoutService{
		Users:          f.users,
		Cart:           f.cart,
		History:        f.history,
		Products:       f.products,
		Sitters:        f.sitters,
		Doctors:        f.doctors,
		Daycares:       f.daycares,
		Donations:      f.donations,
		SitterBookings: f.sitterBk,
		DoctorBookings: f.doctorBk,
		Now:            func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) },
	}
	return f
}

func cartItem(id string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ID:        id,
		UserID:    "user-1",
		ProductID: "prod-" + id,
		Name:      "Item " + id,
		Price:     price,
		Quantity:  qty,
		Selected:  true,
	}
}

// --- tests ---

func TestSessionTotals(t *testing.T) {
	fx := newFixtures(0)
	fx.cart.selected = []models.CartItem{cartItem("a", 50000, 2), cartItem("b", 25000, 1)}

	session, err := fx.svc.PrepareCart("user-1")
	require.NoError(t, err)

	assert.Equal(t, 125000.0, session.Subtotal())
	assert.Equal(t, 132000.0, session.Total())
}

func TestProcessPayment_RequiresMethod(t *testing.T) {
	fx := newFixtures(1000000)
	fx.cart.selected = []models.CartItem{cartItem("a", 10000, 1)}

	session, err := fx.svc.PrepareCart("user-1")
	require.NoError(t, err)

	err = fx.svc.ProcessPayment(session)
	assert.ErrorIs(t, err, ErrNoPaymentMethod)
	assert.Empty(t, fx.history.records)
}

func TestProcessPayment_InsufficientBalance(t *testing.T) {
	fx := newFixtures(10000) // total will be 17000
	fx.cart.selected = []models.CartItem{cartItem("a", 10000, 1)}

	session, err := fx.svc.PrepareCart("user-1")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	err = fx.svc.ProcessPayment(session)
	require.Error(t, err)
	assert.ErrorIs(t, err, userRepo.ErrInsufficientBalance)

	assert.Equal(t, models.TransactionFailed, session.State)
	assert.Equal(t, MsgInsufficientBalance, session.Message)

	// Declined payment must leave everything untouched.
	assert.Equal(t, 10000.0, fx.users.balance)
	assert.Zero(t, fx.users.points)
	assert.Empty(t, fx.history.records)
	assert.Empty(t, fx.products.sold)
	assert.Empty(t, fx.cart.deleted)
}

func TestProcessPayment_CartCheckoutWritesRecordsAndClearsCart(t *testing.T) {
	fx := newFixtures(1000000)
	fx.cart.selected = []models.CartItem{cartItem("a", 50000, 2), cartItem("b", 25000, 1)}

	session, err := fx.svc.PrepareCart("user-1")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	require.NoError(t, fx.svc.ProcessPayment(session))
	assert.Equal(t, models.TransactionSuccess, session.State)

	// One record per line item, all successful, Belanja category.
	require.Len(t, fx.history.records, 2)
	for _, r := range fx.history.records {
		assert.Equal(t, models.TransactionStatusSuccess, r.Status)
		assert.Equal(t, models.CategoryShopping, r.Category)
		assert.Equal(t, "29 Agustus 2026", r.Date)
		assert.False(t, r.Reviewed)
	}
	// Multi-item checkout records each item's own subtotal, not the grand total.
	assert.Equal(t, 100000.0, fx.history.records[0].Total)
	assert.Equal(t, 25000.0, fx.history.records[1].Total)

	// Wallet debited once for the grand total, 2% points awarded.
	assert.Equal(t, []float64{132000}, fx.users.debits)
	assert.Equal(t, int64(2640), fx.users.lastPoints)

	// Sold counters bumped per item quantity, cart lines removed.
	assert.Equal(t, 2, fx.products.sold["prod-a"])
	assert.Equal(t, 1, fx.products.sold["prod-b"])
	assert.ElementsMatch(t, []string{"a", "b"}, fx.cart.deleted)
}

func TestProcessPayment_SingleItemRecordsGrandTotal(t *testing.T) {
	fx := newFixtures(1000000)
	fx.products.products["p1"] = &models.Product{ID: "p1", Name: "Stroller", Price: 40000}

	session, err := fx.svc.PrepareDirectBuy("user-1", "p1")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	require.NoError(t, fx.svc.ProcessPayment(session))

	require.Len(t, fx.history.records, 1)
	// Single-line checkout records the fee-inclusive grand total.
	assert.Equal(t, 47000.0, fx.history.records[0].Total)
	assert.Equal(t, 1, fx.products.sold["p1"])
}

func TestProcessPayment_ExternalMethodSkipsDebit(t *testing.T) {
	fx := newFixtures(0) // empty wallet must not matter
	fx.products.products["p1"] = &models.Product{ID: "p1", Name: "Stroller", Price: 43000}

	session, err := fx.svc.PrepareDirectBuy("user-1", "p1")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeExternal

	require.NoError(t, fx.svc.ProcessPayment(session))
	assert.Equal(t, models.TransactionSuccess, session.State)

	// Zero debit, 1% points on the 50000 total.
	assert.Equal(t, []float64{0}, fx.users.debits)
	assert.Equal(t, int64(500), fx.users.lastPoints)
	require.Len(t, fx.history.records, 1)
}

func TestProcessPayment_SitterBookingSideEffects(t *testing.T) {
	fx := newFixtures(1000000)
	fx.sitters.sitter = &models.Sitter{ID: "sitter-1", Name: "Ana", Price: 80000}

	session, err := fx.svc.PrepareSitter("user-1", "sitter-1", "2026-08-30", "10.00")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	require.NoError(t, fx.svc.ProcessPayment(session))

	assert.Equal(t, 1, fx.sitters.completedJobs)
	assert.Equal(t, []string{"sitter-1_2026-08-30_10.00"}, fx.sitterBk.reserved)
	assert.Empty(t, fx.doctorBk.reserved)

	require.Len(t, fx.history.records, 1)
	assert.Equal(t, models.CategorySitter, fx.history.records[0].Category)
}

func TestProcessPayment_ConsultationSideEffects(t *testing.T) {
	fx := newFixtures(1000000)
	fx.doctors.doctor = &models.Doctor{ID: "doc-1", Name: "dr. Sari", Price: 60000}

	session, err := fx.svc.PrepareConsultation("user-1", "doc-1", "2026-09-01", "13.00")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeExternal

	require.NoError(t, fx.svc.ProcessPayment(session))

	assert.Equal(t, 1, fx.doctors.patientCount)
	assert.Equal(t, []string{"doc-1_2026-09-01_13.00"}, fx.doctorBk.reserved)
	require.Len(t, fx.history.records, 1)
	assert.Equal(t, models.CategoryConsultation, fx.history.records[0].Category)
}

func TestProcessPayment_DonationAddsNominal(t *testing.T) {
	fx := newFixtures(1000000)
	fx.donations.donation = &models.Donation{ID: "don-1", Title: "Bantu Sekolah"}

	session, err := fx.svc.PrepareDonation("user-1", "don-1", 150000)
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	require.NoError(t, fx.svc.ProcessPayment(session))

	// The campaign receives the nominal, not the fee-inclusive total.
	assert.Equal(t, 150000.0, fx.donations.raised)
	require.Len(t, fx.history.records, 1)
	assert.Equal(t, models.CategoryDonation, fx.history.records[0].Category)
	assert.Equal(t, 157000.0, fx.history.records[0].Total)
}

func TestProcessPayment_DaycareIncrementsBookingCount(t *testing.T) {
	fx := newFixtures(1000000)
	fx.daycares.daycare = &models.Daycare{ID: "dc-1", Name: "Happy Kids", Price: 90000}

	session, err := fx.svc.PrepareDaycare("user-1", "dc-1", "2026-09-07")
	require.NoError(t, err)
	session.PaymentType = models.PaymentTypeInternal

	require.NoError(t, fx.svc.ProcessPayment(session))

	assert.Equal(t, 1, fx.daycares.bookingCount)
	require.Len(t, fx.history.records, 1)
	assert.Equal(t, models.CategoryDaycare, fx.history.records[0].Category)
}

func TestPrepare_ResetsStateAndBookingDetails(t *testing.T) {
	fx := newFixtures(1000000)
	fx.sitters.sitter = &models.Sitter{ID: "sitter-1", Name: "Ana", Price: 80000}
	fx.cart.selected = []models.CartItem{cartItem("a", 10000, 1)}

	first, err := fx.svc.PrepareSitter("user-1", "sitter-1", "2026-08-30", "10.00")
	require.NoError(t, err)
	first.PaymentType = models.PaymentTypeInternal
	require.NoError(t, fx.svc.ProcessPayment(first))
	require.Equal(t, models.TransactionSuccess, first.State)

	// A new preparation starts from a clean slate.
	second, err := fx.svc.PrepareCart("user-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionIdle, second.State)
	assert.Empty(t, second.PaymentType)
	assert.Empty(t, second.BookingDate)
	assert.Empty(t, second.BookingTime)
	assert.Empty(t, second.Message)
}

func TestPrepareDonation_RejectsNonPositiveNominal(t *testing.T) {
	fx := newFixtures(0)
	fx.donations.donation = &models.Donation{ID: "don-1", Title: "Bantu Sekolah"}

	_, err := fx.svc.PrepareDonation("user-1", "don-1", 0)
	assert.Error(t, err)
}
