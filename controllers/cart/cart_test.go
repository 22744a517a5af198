package cartControllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Long182k/E-Commercial-Server/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{}, &models.Address{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64) models.Product {
	t.Helper()
	p := models.Product{Title: title, Price: price, Image: "/uploads/products/" + title + ".png"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestAddToCartMergesQuantities(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "keyboard", 100)

	first, err := AddToCart(db, 1, p.ID, 2)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}

	second, err := AddToCart(db, 1, p.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
	if second.ID != first.ID {
		t.Fatalf("merge created a new line: %d vs %d", second.ID, first.ID)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Fatalf("expected one cart row, got %d", count)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupDB(t)
	if _, err := AddToCart(db, 1, 999, 1); !errors.Is(err, models.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetCartReflectsLivePrice(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "mouse", 40)
	if _, err := AddToCart(db, 1, p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", p.ID).Update("price", 55).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	items, err := GetCart(db, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Price != 55 {
		t.Fatalf("expected live price 55, got %v", items[0].Price)
	}
}

func TestUpdateQuantity(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "monitor", 300)
	line, err := AddToCart(db, 1, p.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := UpdateQuantity(db, 1, line.ID, 4)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}
}

func TestUpdateQuantityNotFound(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "desk", 250)
	line, err := AddToCart(db, 1, p.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Unknown line id
	if _, err := UpdateQuantity(db, 1, 999, 3); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	// Another user's line id
	if _, err := UpdateQuantity(db, 2, line.ID, 3); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound for wrong user, got %v", err)
	}

	// The existing line must be untouched
	items, _ := GetCart(db, 1)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("existing line modified: %+v", items)
	}
}

func TestDeleteItemReturnsDeletedLine(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "lamp", 35)
	line, err := AddToCart(db, 1, p.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	deleted, err := DeleteItem(db, 1, line.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ProductID != p.ID || deleted.Quantity != 2 {
		t.Fatalf("unexpected deleted line: %+v", deleted)
	}

	items, _ := GetCart(db, 1)
	if len(items) != 0 {
		t.Fatalf("cart should be empty, got %d lines", len(items))
	}

	if _, err := DeleteItem(db, 1, line.ID); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on second delete, got %v", err)
	}
}

func TestClearCartIsIdempotent(t *testing.T) {
	db := setupDB(t)
	p := seedProduct(t, db, "chair", 120)
	if _, err := AddToCart(db, 1, p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := ClearCart(db, 1); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := ClearCart(db, 1); err != nil {
		t.Fatalf("second clear on empty cart: %v", err)
	}

	items, _ := GetCart(db, 1)
	if len(items) != 0 {
		t.Fatalf("cart not empty after clear")
	}
}
