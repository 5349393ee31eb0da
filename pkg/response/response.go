package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbancare/urbancare-api/pkg/apperror"
)

// Error writes a standardized {"error": message} body with the status mapped
// from the error taxonomy. Internal errors are logged; their details are not
// leaked to the caller.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Printf("[internal error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(code, gin.H{"error": "something went wrong"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
