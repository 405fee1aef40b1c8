package models

// CartItem is a line in a user's cart, and also the ephemeral line-item shape
// the checkout flow synthesizes for direct buys, bookings and donations.
type CartItem struct {
	ID        string  `bson:"id" json:"id"`
	UserID    string  `bson:"userId" json:"userId"`
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	ImageURL  string  `bson:"imageUrl" json:"imageUrl"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Selected  bool    `bson:"selected" json:"selected"`
}
