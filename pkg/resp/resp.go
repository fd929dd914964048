package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope convention: {status:"ok", data} on success,
// {status:"error", message} on failure.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": msg})
}
func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": msg})
}
