package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Long182k/E-Commercial-Server/controllers/auth"
	"github.com/Long182k/E-Commercial-Server/controllers/cart"
	"github.com/Long182k/E-Commercial-Server/controllers/product"
	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mailer sends the order confirmation. Delivery is best-effort: a failure is
// logged and never unwinds an already committed order.
type Mailer interface {
	SendOrderConfirmation(toEmail, name, orderRef string, address models.Address, items []models.CartItemView, summary models.PricingSummary) error
}

type AddressInput struct {
	AddressLine string `json:"addressLine" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	PostalCode  string `json:"postalCode" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

// CheckoutPreview is the read-only response of the checkout summary endpoint.
type CheckoutPreview struct {
	Items   []models.CartItemView `json:"items"`
	Summary models.PricingSummary `json:"summary"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder runs the checkout workflow: read the cart, price it, persist the
// order header, address and line items, bump sell counters and clear the cart
// in one transaction, then send the confirmation email after commit.
func PlaceOrder(db *gorm.DB, mailer Mailer, userID uint, address models.Address) (uint, error) {
	items, err := cartControllers.GetCart(db, userID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, models.ErrEmptyCart
	}

	// Price the cart as it stands right now; the preview the client saw may
	// be stale.
	summary := ComputeSummary(items)

	order := models.Order{
		OrderRef:    generateOrderRef(),
		UserID:      userID,
		Status:      models.OrderStatusPending,
		Subtotal:    summary.Subtotal,
		Shipping:    summary.Shipping,
		Tax:         summary.Tax,
		Discount:    summary.Discount,
		TotalAmount: summary.Total,
		OrderDate:   time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Address and items are inserted explicitly below.
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		address.OrderID = order.ID
		if err := tx.Create(&address).Error; err != nil {
			return err
		}

		for _, item := range items {
			orderItem := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Price:       item.Price,
				ProductName: item.ProductName,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			if err := productControllers.IncrementSellNumber(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return cartControllers.ClearCart(tx, userID)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	// The order is committed. Everything below is best-effort.
	notifyOrderPlaced(db, mailer, order, address, items, summary)
	broadcastNewOrder(order)

	return order.ID, nil
}

func notifyOrderPlaced(db *gorm.DB, mailer Mailer, order models.Order, address models.Address, items []models.CartItemView, summary models.PricingSummary) {
	if mailer == nil {
		return
	}
	email, name, err := authControllers.FindEmailAndName(db, order.UserID)
	if err != nil {
		log.Printf("order %s: could not resolve buyer for confirmation email: %v", order.OrderRef, err)
		return
	}
	if err := mailer.SendOrderConfirmation(email, name, order.OrderRef, address, items, summary); err != nil {
		log.Printf("order %s: confirmation email failed: %v", order.OrderRef, err)
	}
}

// GetOrdersByUserID returns the user's orders with nested items and address,
// most recent first. An order missing its address row comes back with a
// zero-value address instead of failing the query.
func GetOrdersByUserID(db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.Preload("Items").Preload("Address").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetCheckoutSummary prices the current cart without writing anything.
func GetCheckoutSummary(db *gorm.DB, userID uint) (*CheckoutPreview, error) {
	items, err := cartControllers.GetCart(db, userID)
	if err != nil {
		return nil, err
	}
	return &CheckoutPreview{Items: items, Summary: ComputeSummary(items)}, nil
}

// -------- Handlers --------

// POST /orders/:userId
func PlaceOrderHandler(db *gorm.DB, mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid address: " + err.Error()})
			return
		}

		address := models.Address{
			AddressLine: input.AddressLine,
			City:        input.City,
			State:       input.State,
			PostalCode:  input.PostalCode,
			Country:     input.Country,
		}
		orderID, err := PlaceOrder(db, mailer, userID, address)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Cart is empty"})
				return
			}
			log.Printf("order: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Failed to place order"})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Place order successfully", Data: gin.H{"id": orderID}})
	}
}

// GET /orders/:userId
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		orders, err := GetOrdersByUserID(db, userID)
		if err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "List order", Data: orders})
	}
}

// GET /orders/checkout/:userId
func GetCheckoutSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		preview, err := GetCheckoutSummary(db, userID)
		if err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Checkout summary", Data: preview})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func respondUnexpected(c *gin.Context, err error) {
	log.Printf("order: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Status: 500, Msg: "An unexpected error occurred"})
}
