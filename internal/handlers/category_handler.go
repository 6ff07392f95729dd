package handlers

import (
	"net/http"

	"github.com/gatherly/api/internal/services"
	"github.com/gin-gonic/gin"
)

func ListCategories(cs *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := cs.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
