package categoryControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image"`
}

// POST /categories — accepts a batch, same shape as product import.
func CreateCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inputs []CategoryInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}
		if len(inputs) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "No categories provided"})
			return
		}

		categories := make([]models.Category, 0, len(inputs))
		for _, in := range inputs {
			categories = append(categories, models.Category{Title: in.Title, Image: in.Image})
		}
		if err := db.Create(&categories).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Failed to add categories"})
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse{Msg: "Categories added successfully", Data: categories})
	}
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		if len(categories) == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "No categories found"})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Categories retrieved successfully", Data: categories})
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Category not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Category retrieved successfully", Data: category})
	}
}

// PUT /categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid input: " + err.Error()})
			return
		}

		res := db.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title": input.Title,
			"image": input.Image,
		})
		if res.Error != nil {
			respondUnexpected(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Category not found"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Category updated successfully", Data: category})
	}
}

// DELETE /categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		res := db.Delete(&models.Category{}, id)
		if res.Error != nil {
			respondUnexpected(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "Category not found"})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Category deleted successfully", Data: nil})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Invalid category ID"})
		return 0, false
	}
	return uint(id), true
}

func respondUnexpected(c *gin.Context, err error) {
	log.Printf("category: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Status: 500, Msg: "An unexpected error occurred"})
}
