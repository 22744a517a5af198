package models

import "time"

// CartItem is one cart line: the quantity of one product a user intends to
// buy. One row per (user, product); adding the same product again merges
// quantities instead of inserting a duplicate row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"-"`
}

func (CartItem) TableName() string { return "cart" }

// CartItemView is a cart line joined with the product's current
// price/title/image. The price here is live, not a snapshot.
type CartItemView struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"userId"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}
