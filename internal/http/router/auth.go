package router

import (
	"chairside.app/console/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.POST("/signin", h.SignIn)
	rg.POST("/signup", h.SignUp)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)
}
