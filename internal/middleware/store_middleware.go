package middleware

import (
	"github.com/citybeat/citybeat/internal/store"
	"github.com/gin-gonic/gin"
)

func StoreMiddleware(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", s)
		c.Next()
	}
}

func GetStore(c *gin.Context) store.Store {
	s, exists := c.Get("store")
	if !exists {
		return nil
	}
	return s.(store.Store)
}
