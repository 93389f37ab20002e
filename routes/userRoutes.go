package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"github.com/mwihoti/duka-api/middlewares"
	"gorm.io/gorm"
)

func UserRoutes(server *gin.Engine, db *gorm.DB) {
	user := server.Group("/user", middlewares.Authenticate(db))
	{
		user.GET("/profile", controllers.GetProfile(db))
		user.GET("/balance", controllers.GetBalance(db))
		user.POST("/add-funds", controllers.AddFunds(db))
	}
}
