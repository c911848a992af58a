package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type periodForm struct {
	Start string `json:"dataInicio" binding:"required,isodate"`
	End   string `json:"dataFim" binding:"required,isodate,afterdate=dataInicio"`
}

func (f *periodForm) Normalize() {
	if len(f.Start) > 10 {
		f.Start = f.Start[:10]
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			panic(err)
		}
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBindJSON(t *testing.T) {
	var bound periodForm
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		bound = periodForm{}
		if !BindJSON(c, &bound) {
			return
		}
		Success(c, http.StatusOK, "ok", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"dataInicio":"2025-01-01T10:30:00","dataFim":"2025-02-01"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-01-01", bound.Start)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"dataInicio":"2025-03-01","dataFim":"2025-02-01"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, xerrors.MsgInvalidData, body.Message)
	fields, ok := body.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "dataFim", fields[0].(map[string]interface{})["field"])
}

func TestBackendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation passes through", xerrors.NewAPIError(400, xerrors.ProblemDetails{Detail: "CPF já cadastrado"}), http.StatusBadRequest, "CPF já cadastrado"},
		{"unauthorized passes through", xerrors.NewAPIError(401, xerrors.ProblemDetails{}), http.StatusUnauthorized, xerrors.MsgInvalidCredentials},
		{"server error becomes bad gateway", xerrors.NewAPIError(500, xerrors.ProblemDetails{}), http.StatusBadGateway, "request failed with status code 500"},
		{"transport error", assert.AnError, http.StatusBadGateway, assert.AnError.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			BackendError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			require.Len(t, c.Errors, 1)
			assert.ErrorIs(t, c.Errors[0].Err, tt.err)
		})
	}
}
