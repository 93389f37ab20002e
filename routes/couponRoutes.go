package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/controllers"
	"github.com/mwihoti/duka-api/middlewares"
	"gorm.io/gorm"
)

func CouponRoutes(server *gin.Engine, db *gorm.DB) {
	coupons := server.Group("/coupons", middlewares.Authenticate(db))
	{
		coupons.POST("", middlewares.RequireSeller(), controllers.CreateCoupon(db))
		coupons.GET("", middlewares.RequireSeller(), controllers.GetSellerCoupons(db))
		coupons.PATCH("/:id/toggle", middlewares.RequireSeller(), controllers.ToggleCouponStatus(db))
		coupons.DELETE("/:id", middlewares.RequireSeller(), controllers.DeleteCoupon(db))
		coupons.POST("/validate", controllers.ValidateCoupon(db))
	}
}
