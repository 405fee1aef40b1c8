package models

// Transaction statuses.
const (
	TransactionStatusSuccess = "Berhasil"
)

// History categories, one per checkout context.
const (
	CategoryShopping     = "Belanja"
	CategorySitter       = "E-Sitter"
	CategoryConsultation = "Konsultasi"
	CategoryDonation     = "Donasi"
	CategoryDaycare      = "Daycare"
)

// HistoryTransaction is the immutable record written once per paid line item.
// Only the Reviewed flag is ever mutated, and only from false to true.
type HistoryTransaction struct {
	ID        string  `bson:"id" json:"id"`
	UserID    string  `bson:"userId" json:"userId"`
	ProductID string  `bson:"productId" json:"productId"`
	HistoryID string  `bson:"historyId" json:"historyId"`
	Title     string  `bson:"title" json:"title"`
	Date      string  `bson:"date" json:"date"`
	Total     float64 `bson:"total" json:"total"`
	Status    string  `bson:"status" json:"status"`
	ImageURL  string  `bson:"imageUrl" json:"imageUrl"`
	Category  string  `bson:"category" json:"category"`
	Reviewed  bool    `bson:"reviewed" json:"reviewed"`
}
