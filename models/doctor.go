package models

// Doctor is a bookable consultation provider.
type Doctor struct {
	ID             string  `bson:"id" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Specialization string  `bson:"specialization" json:"specialization"`
	Experience     string  `bson:"experience" json:"experience"`
	Rating         float64 `bson:"rating" json:"rating"`
	ReviewCount    int64   `bson:"reviewCount" json:"reviewCount"`
	Price          float64 `bson:"price" json:"price"`
	ImageURL       string  `bson:"imageUrl" json:"imageUrl"`
	Location       string  `bson:"location" json:"location"`
	PatientCount   int64   `bson:"patientCount" json:"patientCount"`
	IsProfessional bool    `bson:"isProfessional" json:"isProfessional"`
}
