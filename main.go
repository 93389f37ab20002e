package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/initializers"
	"github.com/mwihoti/duka-api/routes"
)

func main() {
	initializers.LoadEnv()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set before starting the server.")
	}

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatal(err)
	}
	initializers.SyncDatabase(db)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProductRoutes(server, db)
	routes.CartRoutes(server, db)
	routes.OrderRoutes(server, db)
	routes.CouponRoutes(server, db)
	routes.UserRoutes(server, db)

	server.Run()
}
