package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// CreatedID is the create-customer success shape: just the new identifier.
func CreatedID(c *gin.Context, id string) {
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
