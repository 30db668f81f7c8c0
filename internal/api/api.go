package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// parseIDParam reads a numeric path parameter. A zero return means the
// response has already been written.
func parseIDParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0
	}
	return uint(id)
}

// writeError maps service errors onto HTTP statuses. Internal error text is
// logged, never returned to the client.
func writeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
