package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"github.com/mwihoti/duka-api/middlewares"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB) {
	orders := server.Group("/orders", middlewares.Authenticate(db))
	{
		orders.POST("/checkout", controllers.Checkout(db))
		orders.GET("", controllers.GetOrders(db))
	}
}
