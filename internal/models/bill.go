package models

import (
	"time"

	"gorm.io/datatypes"
)

type Bill struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UUID           string         `gorm:"size:36;uniqueIndex" json:"uuid"`
	Name           string         `json:"name"`
	ContactNumber  string         `json:"contactNumber"`
	Email          string         `json:"email"`
	PaymentMethod  string         `json:"paymentMethod"`
	ProductDetails datatypes.JSON `json:"productDetails"`
	Total          int            `json:"total"`
	CreatedBy      string         `gorm:"index" json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// LineItem is one product entry inside a bill's product details.
// It is rendered into the receipt table and never persisted on its own.
type LineItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity string  `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}
