package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
)

func RequireSeller() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, exists := ctx.Get("userRole")
		if !exists || role != models.RoleSeller {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Seller access required"})
			return
		}

		ctx.Next()
	}
}
