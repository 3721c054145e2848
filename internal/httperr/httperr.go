package httperr

import (
	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Status:  "error",
		Message: message,
	})
}
