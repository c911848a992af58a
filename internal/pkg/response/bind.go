// internal/pkg/response/bind.go
package response

import (
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

type normalizer interface {
	Normalize()
}

// BindJSON decodes and validates the request body into req, answering 400 with
// the field errors when it fails. Forms with dates are normalized afterwards.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		ValidationError(c, xerrors.MsgInvalidData, validation.Translate(err))
		return false
	}
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	return true
}

// BindQuery is BindJSON for query strings.
func BindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		ValidationError(c, xerrors.MsgInvalidData, validation.Translate(err))
		return false
	}
	return true
}
