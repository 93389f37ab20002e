package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"github.com/mwihoti/duka-api/utils"
	"gorm.io/gorm"
)

const (
	// Standard response messages
	msgInvalidInput          = "Invalid input"
	msgUserAlreadyExists     = "User already exists"
	msgInvalidRole           = "Role must be BUYER or SELLER"
	msgFailedToHashPassword  = "Failed to hash password"
	msgInvalidCredentials    = "Invalid credentials"
	msgFailedToGenerateToken = "Failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentUserID returns the authenticated user's id set by the
// Authenticate middleware.
func currentUserID(ctx *gin.Context) int {
	value, _ := ctx.Get("userId")
	userId, _ := value.(int)
	return userId
}

func publicUser(user models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register handles user registration.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var registerData models.RegisterData
		if err := ctx.ShouldBindJSON(&registerData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		// Normalize the role to the fixed enumeration, defaulting to BUYER.
		role := registerData.Role
		if role == "" {
			role = models.RoleBuyer
		}
		if role != models.RoleBuyer && role != models.RoleSeller {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRole)
			return
		}

		var existingUser models.User
		result := db.Where("email = ?", registerData.Email).Find(&existingUser)
		if result.Error != nil {
			log.Println("Database error during user check:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if result.RowsAffected > 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}

		hashedPassword, err := utils.HashPassword(registerData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		user := models.User{
			Email:    registerData.Email,
			Password: hashedPassword,
			Role:     role,
		}
		if result := db.Create(&user); result.Error != nil {
			log.Println("User creation error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		token, err := utils.GenerateToken(user.ID, user.Role)
		if err != nil {
			log.Println("Token generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    publicUser(user),
			"token":   token,
		})
	}
}

// Login handles user authentication.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var user models.User
		if err := db.Where("email = ?", loginData.Email).First(&user).Error; err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		if !utils.VerifyPassword(user.Password, loginData.Password) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		token, err := utils.GenerateToken(user.ID, user.Role)
		if err != nil {
			log.Println("Token generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    publicUser(user),
			"token":   token,
		})
	}
}
