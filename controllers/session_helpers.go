package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/middlewares"
	"github.com/nakhazaman/restaurant-foh/session"
)

// SessionOf mengambil sesi yang dipasang auth middleware.
func SessionOf(c *gin.Context) (*session.Session, bool) {
	return middlewares.SessionFrom(c)
}
