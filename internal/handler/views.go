package handler

import (
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

// ListViews returns the navigation shell in sidebar order.
func ListViews(c *gin.Context) {
	util.Success(c, util.Response{"views": view.Pages})
}
