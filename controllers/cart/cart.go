package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

const cartItemColumns = "cart.id, cart.user_id, cart.product_id, cart.quantity, " +
	"products.title AS product_name, products.price, products.image AS image_url"

func cartQuery(db *gorm.DB) *gorm.DB {
	return db.Table("cart").
		Select(cartItemColumns).
		Joins("JOIN products ON products.id = cart.product_id")
}

// AddToCart merges the quantity into an existing line for (user, product) or
// inserts a new one. The merge happens in a single upsert statement so two
// concurrent adds for the same product never lose an update.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItemView, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	line := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + excluded.quantity"),
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, err
	}

	var view models.CartItemView
	err = cartQuery(db).
		Where("cart.user_id = ? AND cart.product_id = ?", userID, productID).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// GetCart returns the user's cart lines joined with live product data.
func GetCart(db *gorm.DB, userID uint) ([]models.CartItemView, error) {
	items := []models.CartItemView{}
	err := cartQuery(db).
		Where("cart.user_id = ?", userID).
		Order("cart.id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity replaces the quantity of one cart line owned by the user.
func UpdateQuantity(db *gorm.DB, userID, cartID uint, quantity int) (*models.CartItemView, error) {
	res := db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrCartItemNotFound
	}

	var view models.CartItemView
	if err := cartQuery(db).Where("cart.id = ?", cartID).Scan(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

// DeleteItem removes one cart line and returns its data to the caller.
func DeleteItem(db *gorm.DB, userID, cartID uint) (*models.CartItemView, error) {
	var view models.CartItemView
	if err := cartQuery(db).
		Where("cart.id = ? AND cart.user_id = ?", cartID, userID).
		Scan(&view).Error; err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, models.ErrCartItemNotFound
	}

	res := db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrCartItemNotFound
	}
	return &view, nil
}

// ClearCart deletes every line for the user. Idempotent: clearing an already
// empty cart is not an error.
func ClearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// -------- Handlers --------

// POST /cart/:userId
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}

		item, err := AddToCart(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Product does not exist"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Item added to cart successfully", Data: item})
	}
}

// GET /cart/:userId
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		items, err := GetCart(db, userID)
		if err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Cart items retrieved successfully", Data: items})
	}
}

// PUT /cart/:userId/:cartId
func UpdateQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}

		item, err := UpdateQuantity(db, userID, cartID, input.Quantity)
		if err != nil {
			if errors.Is(err, models.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Cart item not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Cart item quantity updated successfully", Data: item})
	}
}

// DELETE /cart/:userId/:cartId
func DeleteItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}

		item, err := DeleteItem(db, userID, cartID)
		if err != nil {
			if errors.Is(err, models.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Cart item not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Item removed from cart successfully", Data: item})
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
	log.Printf("cart: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Status: 500, Msg: "An unexpected error occurred"})
}
