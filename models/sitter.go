package models

// Sitter is a bookable childcare provider.
type Sitter struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Experience    string   `bson:"experience" json:"experience"`
	Location      string   `bson:"location" json:"location"`
	Latitude      float64  `bson:"latitude" json:"latitude"`
	Longitude     float64  `bson:"longitude" json:"longitude"`
	CompletedJobs int64    `bson:"completedJobs" json:"completedJobs"`
	Rating        float64  `bson:"rating" json:"rating"`
	ReviewCount   int64    `bson:"reviewCount" json:"reviewCount"`
	Price         float64  `bson:"price" json:"price"`
	ImageURL      string   `bson:"imageUrl" json:"imageUrl"`
	Specialty     string   `bson:"specialty" json:"specialty"`
	AvailableDays []string `bson:"availableDays" json:"availableDays"`

	// DistanceKm is computed per request from the caller's coordinates.
	DistanceKm float64 `bson:"-" json:"distanceKm,omitempty"`
}
