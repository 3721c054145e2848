package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes {key: data}.
func OK(c *gin.Context, key string, data any) {
	c.JSON(http.StatusOK, gin.H{key: data})
}

func Created(c *gin.Context, key string, data any) {
	c.JSON(http.StatusCreated, gin.H{key: data})
}

// List writes {key: items, "total": n}. A nil slice is written as [].
func List[T any](c *gin.Context, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		key:     items,
		"total": len(items),
	})
}
