package routes

import (
	productControllers "github.com/Long182k/E-Commercial-Server/controllers/product"
	"github.com/Long182k/E-Commercial-Server/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/bestsellers", productControllers.GetBestSellers(db))
		products.GET("/export", productControllers.ExportProductsToExcel(db))
		products.GET("/category/:categoryId", productControllers.GetProductsByCategory(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		// Catalog mutations require the admin key.
		products.POST("", middleware.ValidateAPIKey, productControllers.CreateProducts(db))
		products.POST("/upload", middleware.ValidateAPIKey, productControllers.UploadProductImage())
		products.PUT("/:id", middleware.ValidateAPIKey, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateAPIKey, productControllers.DeleteProduct(db))
	}
}
