package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"gorm.io/gorm"
)

func AuthRoutes(server *gin.Engine, db *gorm.DB) {
	auth := server.Group("/auth")
	{
		auth.POST("/register", controllers.Register(db))
		auth.POST("/login", controllers.Login(db))
	}
}
