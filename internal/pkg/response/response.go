// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "rental-console/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error, data ...interface{}) {
	// Abort first so later handlers in the chain never write.
	c.Abort()

	response := Response{
		Success: false,
		Message: message,
	}

	if err != nil {
		response.Error = err.Error()
	}

	if len(data) > 0 {
		response.Data = data[0]
	}

	c.JSON(code, response)
}

// ValidationError sends a 400 Bad Request response carrying field errors.
func ValidationError(c *gin.Context, message string, fields interface{}) {
	Error(c, http.StatusBadRequest, message, nil, fields)
}

// BackendError maps an error returned by the REST backend onto the console response.
// Backend 4xx statuses pass through; anything else becomes 502. The error is
// recorded on the context so later middleware can tell backend answers apart.
func BackendError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	status := xerrors.StatusCode(err)
	if status < 400 || status >= 500 {
		status = http.StatusBadGateway
	}
	Error(c, status, xerrors.Message(err), err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string, data ...interface{}) {
	Error(c, http.StatusUnauthorized, message, nil, data...)
}
