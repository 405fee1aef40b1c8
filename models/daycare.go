package models

// Daycare is a bookable daycare facility.
type Daycare struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description" json:"description"`
	Location     string   `bson:"location" json:"location"`
	Latitude     float64  `bson:"latitude" json:"latitude"`
	Longitude    float64  `bson:"longitude" json:"longitude"`
	Price        float64  `bson:"price" json:"price"`
	PriceUnit    string   `bson:"priceUnit" json:"priceUnit"`
	Rating       float64  `bson:"rating" json:"rating"`
	ReviewCount  int64    `bson:"reviewCount" json:"reviewCount"`
	ImageURL     string   `bson:"imageUrl" json:"imageUrl"`
	Facilities   []string `bson:"facilities" json:"facilities"`
	OpeningHours string   `bson:"openingHours" json:"openingHours"`
	AgeRange     string   `bson:"ageRange" json:"ageRange"`
	BookingCount int64    `bson:"bookingCount" json:"bookingCount"`

	// DistanceKm is computed per request from the caller's coordinates.
	DistanceKm float64 `bson:"-" json:"distanceKm,omitempty"`
}
