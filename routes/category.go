package routes

import (
	categoryControllers "github.com/Long182k/E-Commercial-Server/controllers/category"
	"github.com/Long182k/E-Commercial-Server/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("", categoryControllers.GetCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))

		categories.POST("", middleware.ValidateAPIKey, categoryControllers.CreateCategories(db))
		categories.PUT("/:id", middleware.ValidateAPIKey, categoryControllers.UpdateCategory(db))
		categories.DELETE("/:id", middleware.ValidateAPIKey, categoryControllers.DeleteCategory(db))
	}
}
