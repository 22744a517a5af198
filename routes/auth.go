package routes

import (
	authControllers "github.com/Long182k/E-Commercial-Server/controllers/auth"
	"github.com/Long182k/E-Commercial-Server/middleware"
	"github.com/Long182k/E-Commercial-Server/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, mailer *utils.EmailService) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authControllers.RegisterHandler(db))
		auth.POST("/login", authControllers.LoginHandler(db))
		auth.POST("/reset-password", authControllers.ResetPasswordHandler(db, mailer))
		auth.GET("/profile", middleware.ValidateToken, authControllers.ProfileHandler(db))
	}
}
