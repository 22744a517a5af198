package authControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordMailer delivers the regenerated password. Unlike the order
// confirmation, delivery here is required: a reset nobody receives is useless.
type PasswordMailer interface {
	SendPasswordReset(toEmail, name, newPassword string) error
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// RegisterUser validates and creates a new account.
func RegisterUser(db *gorm.DB, req RegisterRequest) (*models.UserResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, errors.New("invalid email format")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, models.ErrUserExists
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	resp := user.Response()
	return &resp, nil
}

// LoginUser checks the stored credentials for the email.
func LoginUser(db *gorm.DB, email, password string) (*models.UserResponse, error) {
	var user models.User
	err := db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	resp := user.Response()
	return &resp, nil
}

// FindEmailAndName resolves a user's contact details for notifications.
func FindEmailAndName(db *gorm.DB, userID uint) (email, name string, err error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", models.ErrUserNotFound
		}
		return "", "", err
	}
	return user.Email, user.Name, nil
}

func signToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// -------- Handlers --------

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Missing required fields"})
			return
		}

		user, err := RegisterUser(db, req)
		if err != nil {
			if errors.Is(err, models.ErrUserExists) {
				c.JSON(http.StatusConflict, models.ErrorResponse{Status: 409, Msg: "Username or email already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse{Msg: "User registered successfully", Data: user})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Missing email or password"})
			return
		}

		user, err := LoginUser(db, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{Status: 401, Msg: "Invalid credentials"})
				return
			}
			respondUnexpected(c, err)
			return
		}

		token, err := signToken(user.ID)
		if err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Login successful", Data: gin.H{
			"user":  user,
			"token": token,
		}})
	}
}

// POST /auth/reset-password — regenerates the password and emails it.
func ResetPasswordHandler(db *gorm.DB, mailer PasswordMailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Status: 400, Msg: "Missing email"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "User not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}

		newPassword := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
		if err := db.Model(&user).Update("password", newPassword).Error; err != nil {
			respondUnexpected(c, err)
			return
		}
		if err := mailer.SendPasswordReset(user.Email, user.Name, newPassword); err != nil {
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Password reset email sent", Data: nil})
	}
}

// GET /auth/profile — requires a valid token; the middleware stores user_id.
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Status: 401, Msg: "Unauthorized"})
			return
		}
		userID, ok := userIDVal.(float64) // JWT numeric claims decode as float64
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Status: 401, Msg: "Invalid token claims"})
			return
		}

		var user models.User
		if err := db.First(&user, uint(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Status: 404, Msg: "User not found"})
				return
			}
			respondUnexpected(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Msg: "Profile retrieved successfully", Data: user.Response()})
	}
}

func respondUnexpected(c *gin.Context, err error) {
	log.Printf("auth: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Status: 500, Msg: "An unexpected error occurred"})
}
