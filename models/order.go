package models

import "time"

const OrderStatusPending = "PENDING"

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex" json:"orderRef"`
	UserID      uint        `gorm:"index;not null" json:"userId"`
	Status      string      `gorm:"type:varchar(50)" json:"status"`
	Subtotal    float64     `json:"subtotal"`
	Shipping    float64     `json:"shipping"`
	Tax         float64     `json:"tax"`
	Discount    float64     `json:"discount"`
	TotalAmount float64     `json:"totalAmount"`
	OrderDate   time.Time   `json:"orderDate"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address     Address     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"address"`
}

// OrderItem snapshots a cart line at order time. Price and product name are
// copied, so later catalog edits never change a placed order.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"orderId"`
	ProductID   uint    `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"productName"`
}

// Address is the shipping address supplied at checkout, one row per order.
type Address struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     uint   `gorm:"index" json:"-"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

func (Address) TableName() string { return "addresses" }

// PricingSummary is derived from a cart snapshot and never persisted as a
// unit; its components are copied onto the order row at placement time.
type PricingSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
