package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Writers for the flat response bodies this API speaks. Every error
// carries a human-readable message; 500s additionally surface the
// underlying error text.

// JSON writes an arbitrary body with the given status.
func JSON(c *gin.Context, status int, body gin.H) {
	c.JSON(status, body)
}

// Message writes {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Invalid writes the 422 validation failure body, with per-field
// details when available.
func Invalid(c *gin.Context, details map[string]string) {
	body := gin.H{"message": "Invalid inputs"}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

// Internal writes the 500 body with the underlying error appended.
func Internal(c *gin.Context, msg string, err error) {
	body := gin.H{"message": msg}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
