package productControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	CategoryID  uint    `json:"categoryId"`
	Image       string  `json:"image"`
}

// GetByID looks up one product.
func GetByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// IncrementSellNumber bumps the sell counter by the quantity sold. Called
// inside the order transaction, once per order line.
func IncrementSellNumber(tx *gorm.DB, productID uint, quantity int) error {
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("sell_number", gorm.Expr("sell_number + ?", quantity)).Error
}

// POST /products — accepts a batch of products, like the admin import flow.
func CreateProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inputs []ProductInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}
		if len(inputs) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "No products provided"})
			return
		}

		products := make([]models.Product, 0, len(inputs))
		for _, in := range inputs {
			products = append(products, models.Product{
				Title:       in.Title,
				Price:       in.Price,
				Description: in.Description,
				CategoryID:  in.CategoryID,
				Image:       in.Image,
			})
		}
		if err := db.Create(&products).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Failed to add products"})
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse{Msg: "Products added successfully", Data: products})
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "No products found"})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Products retrieved successfully", Data: products})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		product, err := GetByID(db, id)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Product not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Product retrieved successfully", Data: product})
	}
}

// GET /products/category/:categoryId
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := parseID(c, "categoryId")
		if !ok {
			return
		}
		var products []models.Product
		if err := db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Products retrieved successfully", Data: products})
	}
}

// GET /products/bestsellers — top ten by units sold.
func GetBestSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("sell_number DESC").Limit(10).Find(&products).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Best sellers retrieved successfully", Data: products})
	}
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}

		res := db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       input.Title,
			"price":       input.Price,
			"description": input.Description,
			"category_id": input.CategoryID,
			"image":       input.Image,
		})
		if res.Error != nil {
			respondUnexpected(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Product updated successfully", Data: product})
	}
}

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			respondUnexpected(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Product not found"})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Product deleted successfully", Data: nil})
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
	log.Printf("product: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Status: 500, Msg: "An unexpected error occurred"})
}
