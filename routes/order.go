package routes

import (
	orderControllers "github.com/Long182k/E-Commercial-Server/controllers/order"
	"github.com/Long182k/E-Commercial-Server/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, mailer *utils.EmailService) {
	orders := r.Group("/orders")
	{
		// Place a new order from the user's cart
		orders.POST("/:userId", orderControllers.PlaceOrderHandler(db, mailer))

		// Fetch orders for a specific user
		orders.GET("/:userId", orderControllers.GetUserOrdersHandler(db))

		// Read-only pricing preview of the current cart
		orders.GET("/checkout/:userId", orderControllers.GetCheckoutSummaryHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
