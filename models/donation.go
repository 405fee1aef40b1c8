package models

// Donation is a fundraising campaign.
type Donation struct {
	ID            string  `bson:"id" json:"id"`
	Title         string  `bson:"title" json:"title"`
	ImageURL      string  `bson:"imageUrl" json:"imageUrl"`
	Location      string  `bson:"location" json:"location"`
	ViewCount     int64   `bson:"viewCount" json:"viewCount"`
	CurrentAmount float64 `bson:"currentAmount" json:"currentAmount"`
	TargetAmount  float64 `bson:"targetAmount" json:"targetAmount"`
	OrganizerName string  `bson:"organizerName" json:"organizerName"`
	IsVerified    bool    `bson:"isVerified" json:"isVerified"`
	Description   string  `bson:"description" json:"description"`
	Category      string  `bson:"category" json:"category"`
}
