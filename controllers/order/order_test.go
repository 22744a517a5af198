package orderControllers

import (
	"errors"
	"fmt"
	"testing"

	cartControllers "github.com/Long182k/E-Commercial-Server/controllers/cart"
	"github.com/Long182k/E-Commercial-Server/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	calls    int
	toEmail  string
	orderRef string
	summary  models.PricingSummary
	err      error
}

func (f *fakeMailer) SendOrderConfirmation(toEmail, name, orderRef string, address models.Address, items []models.CartItemView, summary models.PricingSummary) error {
	f.calls++
	f.toEmail = toEmail
	f.orderRef = orderRef
	f.summary = summary
	return f.err
}

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

func seedUserAndCart(t *testing.T, db *gorm.DB) (models.User, []models.Product) {
	t.Helper()
	user := models.User{Username: "buyer", Email: "buyer@example.com", Password: "password123", Name: "Buyer"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	products := []models.Product{
		{Title: "keyboard", Price: 750},
		{Title: "mouse", Price: 50},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}

	if _, err := cartControllers.AddToCart(db, user.ID, products[0].ID, 2); err != nil {
		t.Fatalf("add keyboard: %v", err)
	}
	if _, err := cartControllers.AddToCart(db, user.ID, products[1].ID, 3); err != nil {
		t.Fatalf("add mouse: %v", err)
	}
	return user, products
}

var testAddress = models.Address{
	AddressLine: "1 Main St",
	City:        "Springfield",
	State:       "IL",
	PostalCode:  "62701",
	Country:     "USA",
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupDB(t)
	user := models.User{Username: "empty", Email: "empty@example.com", Password: "password123", Name: "Empty"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	mailer := &fakeMailer{}
	if _, err := PlaceOrder(db, mailer, user.ID, testAddress); !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("empty-cart checkout persisted %d orders", orders)
	}
	if mailer.calls != 0 {
		t.Fatalf("no email should be sent for a failed order")
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	db := setupDB(t)
	user, products := seedUserAndCart(t, db)

	preview, err := GetCheckoutSummary(db, user.ID)
	if err != nil {
		t.Fatalf("checkout summary: %v", err)
	}
	// 2*750 + 3*50 = 1650: free shipping, no discount
	if !almostEqual(preview.Summary.Subtotal, 1650) {
		t.Fatalf("preview subtotal: got %v", preview.Summary.Subtotal)
	}

	mailer := &fakeMailer{}
	orderID, err := PlaceOrder(db, mailer, user.ID, testAddress)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if orderID == 0 {
		t.Fatalf("expected a generated order id")
	}

	// Cart is cleared
	items, err := cartControllers.GetCart(db, user.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(items))
	}

	// Exactly one order whose totals match the preview
	orders, err := GetOrdersByUserID(db, user.ID)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	order := orders[0]
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected status PENDING, got %q", order.Status)
	}
	if !almostEqual(order.TotalAmount, preview.Summary.Total) {
		t.Fatalf("order total %v does not match preview total %v", order.TotalAmount, preview.Summary.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected two order items, got %d", len(order.Items))
	}
	if order.Address.City != "Springfield" {
		t.Fatalf("address not persisted: %+v", order.Address)
	}

	// Price snapshot: repricing the product must not change the order item
	if err := db.Model(&models.Product{}).Where("id = ?", products[0].ID).Update("price", 999).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	reread, _ := GetOrdersByUserID(db, user.ID)
	for _, item := range reread[0].Items {
		if item.ProductID == products[0].ID && item.Price != 750 {
			t.Fatalf("order item price changed after catalog edit: %v", item.Price)
		}
	}

	// Sell counters bumped once per unit sold
	var keyboard models.Product
	db.First(&keyboard, products[0].ID)
	if keyboard.SellNumber != 2 {
		t.Fatalf("expected sell_number 2, got %d", keyboard.SellNumber)
	}

	// Confirmation email carried the committed totals
	if mailer.calls != 1 {
		t.Fatalf("expected one confirmation email, got %d", mailer.calls)
	}
	if mailer.toEmail != user.Email {
		t.Fatalf("confirmation sent to %q", mailer.toEmail)
	}
	if !almostEqual(mailer.summary.Total, order.TotalAmount) {
		t.Fatalf("emailed total %v does not match order", mailer.summary.Total)
	}

	// A second checkout finds the cart empty
	if _, err := PlaceOrder(db, mailer, user.ID, testAddress); !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart on second checkout, got %v", err)
	}
}

func TestPlaceOrderEmailFailureDoesNotUnwindOrder(t *testing.T) {
	db := setupDB(t)
	user, _ := seedUserAndCart(t, db)

	mailer := &fakeMailer{err: errors.New("smtp down")}
	if _, err := PlaceOrder(db, mailer, user.ID, testAddress); err != nil {
		t.Fatalf("email failure must not fail the order: %v", err)
	}

	orders, _ := GetOrdersByUserID(db, user.ID)
	if len(orders) != 1 {
		t.Fatalf("order not committed despite email failure")
	}
}

func TestPlaceOrderRollsBackOnItemInsertFailure(t *testing.T) {
	db := setupDB(t)
	user, _ := seedUserAndCart(t, db)

	// Force the order-item insert to fail after the header insert succeeded.
	if err := db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	mailer := &fakeMailer{}
	if _, err := PlaceOrder(db, mailer, user.ID, testAddress); err == nil {
		t.Fatalf("expected place order to fail")
	}

	var orders, addresses int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.Address{}).Count(&addresses)
	if orders != 0 || addresses != 0 {
		t.Fatalf("rollback left %d orders and %d addresses", orders, addresses)
	}

	items, err := cartControllers.GetCart(db, user.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("cart must be untouched after rollback, got %d lines", len(items))
	}
	if mailer.calls != 0 {
		t.Fatalf("no email should be sent for a rolled back order")
	}
}

func TestGetCheckoutSummaryIsReadOnly(t *testing.T) {
	db := setupDB(t)
	user, _ := seedUserAndCart(t, db)

	first, err := GetCheckoutSummary(db, user.ID)
	if err != nil {
		t.Fatalf("first summary: %v", err)
	}
	second, err := GetCheckoutSummary(db, user.ID)
	if err != nil {
		t.Fatalf("second summary: %v", err)
	}
	if first.Summary != second.Summary {
		t.Fatalf("summaries differ without cart mutation: %+v vs %+v", first.Summary, second.Summary)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("checkout summary wrote an order")
	}
}

func TestGetOrdersByUserIDToleratesMissingAddress(t *testing.T) {
	db := setupDB(t)
	user, _ := seedUserAndCart(t, db)

	if _, err := PlaceOrder(db, &fakeMailer{}, user.ID, testAddress); err != nil {
		t.Fatalf("place order: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Address{}).Error; err != nil {
		t.Fatalf("delete addresses: %v", err)
	}

	orders, err := GetOrdersByUserID(db, user.ID)
	if err != nil {
		t.Fatalf("orders with missing address must not fail: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].Address != (models.Address{}) {
		t.Fatalf("expected zero-value address, got %+v", orders[0].Address)
	}
}
