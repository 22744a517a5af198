package models

// Product is a catalog entry. SellNumber counts units sold across completed
// orders and only ever grows; the best-sellers ranking is built on it.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	CategoryID  uint    `gorm:"index" json:"categoryId"`
	Image       string  `json:"image"`
	SellNumber  int     `gorm:"default:0" json:"sellNumber"`
}
