package models

import "time"

// BookingSlot is the persisted reservation of a (resource, date, time) triple.
// Its document key is "resourceID_date_time"; it is created once and never
// mutated or deleted.
type BookingSlot struct {
	ResourceID string    `bson:"resourceId" json:"resourceId"`
	Date       string    `bson:"date" json:"date"`
	Time       string    `bson:"time" json:"time"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// TimeSlot is a transient slot shown on booking screens. Not persisted;
// regenerated per view per date.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BookingDate is one entry of the 7-day date picker.
type BookingDate struct {
	Day      string `json:"day"`
	Date     string `json:"date"`
	FullDate string `json:"fullDate"`
}
