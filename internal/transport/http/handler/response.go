package handler

import (
	"github.com/gin-gonic/gin"
)

// Every JSON body carries success: 1 or 0, plus either data or message.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": 1, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": 1, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": 0, "message": message})
}
