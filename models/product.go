package models

// Category identifies a shop category.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Slug string `bson:"slug" json:"slug"`
}

// Product is a shop listing.
type Product struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Subtitle      string   `bson:"subtitle" json:"subtitle"`
	Price         float64  `bson:"price" json:"price"`
	OriginalPrice float64  `bson:"originalPrice" json:"originalPrice"`
	Rating        float64  `bson:"rating" json:"rating"`
	ReviewCount   int64    `bson:"reviewCount" json:"reviewCount"`
	Description   string   `bson:"description" json:"description"`
	StoreName     string   `bson:"storeName" json:"storeName"`
	StoreLocation string   `bson:"storeLocation" json:"storeLocation"`
	IsNew         bool     `bson:"isNew" json:"isNew"`
	Category      Category `bson:"category" json:"category"`
	ImageURLs     []string `bson:"imageUrls" json:"imageUrls"`
	Sold          int64    `bson:"sold" json:"sold"`
}

// MainImage returns the first image, the one shown on cards and in carts.
func (p Product) MainImage() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return ""
}
