package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"github.com/mwihoti/duka-api/middlewares"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB) {
	cart := server.Group("/cart", middlewares.Authenticate(db))
	{
		cart.GET("", controllers.GetCart(db))
		cart.POST("/add", controllers.AddToCart(db))
		cart.PATCH("/update", controllers.UpdateCartItem(db))
		cart.DELETE("/remove", controllers.RemoveFromCart(db))
	}
}
