package resp

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rocketfood/pkg/apperr"
)

// Every endpoint answers with the same {message, data} envelope.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"message": "Success", "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"message": "Success", "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "data": nil})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": msg, "data": nil})
}

// Error maps a service error to a status code by its apperr kind. Controllers
// call this instead of inspecting errors themselves.
func Error(c *gin.Context, err error) {
	msg := apperr.MessageOf(err)
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": msg, "data": nil})
	case apperr.KindValidation, apperr.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"message": msg, "data": nil})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msg, "data": nil})
	}
}
