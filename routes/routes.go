package routes

import (
	"github.com/Long182k/E-Commercial-Server/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point wiring every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer *utils.EmailService) {
	SetupAuthRoutes(r, db, mailer)
	SetupCategoryRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, mailer)
}
