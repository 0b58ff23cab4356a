package domain

import "time"

// StockStatus is the availability of a product. The values are the
// Indonesian display strings used throughout the site.
type StockStatus string

const (
	StockAvailable  StockStatus = "Tersedia"
	StockPreorder   StockStatus = "Pre-order"
	StockOutOfStock StockStatus = "Habis"
)

// Valid reports whether s is a known stock status.
func (s StockStatus) Valid() bool {
	switch s {
	case StockAvailable, StockPreorder, StockOutOfStock:
		return true
	}
	return false
}

// Product is an item sold by the cooperative. Price is a display string
// ("Rp 10.000/kg"), not a numeric amount.
type Product struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Name        BilingualText  `json:"name" bson:"name"`
	Category    string         `json:"category" bson:"category"`
	Price       string         `json:"price" bson:"price"`
	Description *BilingualText `json:"description,omitempty" bson:"description,omitempty"`
	StockStatus StockStatus    `json:"stock_status" bson:"stock_status"`
	ImageURL    string         `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
