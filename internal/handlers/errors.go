package handlers

import (
	"github.com/gin-gonic/gin"
)

// attachError records err on the gin context so the access log carries
// the failure reason. c.Error returns *gin.Error, not error, hence the
// blank assignment.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
}

// respondError writes a JSON error body and records err for the access log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails is respondError with a structured details field,
// used for validation failures.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}
