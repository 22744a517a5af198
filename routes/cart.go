package routes

import (
	cartControllers "github.com/Long182k/E-Commercial-Server/controllers/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.POST("/:userId", cartControllers.AddToCartHandler(db))
		cart.GET("/:userId", cartControllers.GetCartHandler(db))
		cart.PUT("/:userId/:cartId", cartControllers.UpdateQuantityHandler(db))
		cart.DELETE("/:userId/:cartId", cartControllers.DeleteItemHandler(db))
	}
}
