package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"github.com/mwihoti/duka-api/middlewares"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/products", controllers.GetProducts(db))
	server.GET("/products/search", controllers.SearchProducts(db))
	server.GET("/products/:id", controllers.GetProduct(db))
	server.POST("/products", middlewares.Authenticate(db), middlewares.RequireSeller(), controllers.CreateProduct(db))
	server.DELETE("/products/:id", middlewares.Authenticate(db), middlewares.RequireSeller(), controllers.DeleteProduct(db))
}
