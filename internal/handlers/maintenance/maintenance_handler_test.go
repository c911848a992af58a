package maintenance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-console/internal/domain/maintenance"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			panic(err)
		}
	}
}

type fakeBackend struct {
	updated   *maintenance.UpdateMaintenanceRequest
	completed string
}

func (f *fakeBackend) ListMaintenance(context.Context) ([]maintenance.Maintenance, error) {
	return nil, nil
}
func (f *fakeBackend) MaintenanceByProperty(context.Context, string) ([]maintenance.Maintenance, error) {
	return nil, nil
}
func (f *fakeBackend) GetMaintenance(context.Context, string) (*maintenance.Maintenance, error) {
	return nil, xerrors.NewAPIError(http.StatusNotFound, xerrors.ProblemDetails{Detail: "Manutenção não encontrada"})
}
func (f *fakeBackend) CreateMaintenance(context.Context, *maintenance.CreateMaintenanceRequest) (*maintenance.Maintenance, error) {
	return &maintenance.Maintenance{ID: "mt-new"}, nil
}
func (f *fakeBackend) UpdateMaintenance(_ context.Context, id string, req *maintenance.UpdateMaintenanceRequest) (*maintenance.Maintenance, error) {
	f.updated = req
	return &maintenance.Maintenance{ID: id}, nil
}
func (f *fakeBackend) DeleteMaintenance(context.Context, string) error { return nil }
func (f *fakeBackend) CompleteMaintenance(_ context.Context, id string) error {
	f.completed = id
	return nil
}

func setup() (*gin.Engine, *fakeBackend) {
	backend := &fakeBackend{}
	h := NewMaintenanceHandler(backend, zap.NewNop())

	r := gin.New()
	r.GET("/maintenance/:id", h.Get)
	r.PUT("/maintenance/:id", h.Update)
	r.PUT("/maintenance/:id/complete", h.Complete)
	return r, backend
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGet_BackendDetail(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodGet, "/maintenance/x", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Manutenção não encontrada")
}

func TestUpdate(t *testing.T) {
	r, backend := setup()

	w := do(r, http.MethodPut, "/maintenance/mt1", `{"descricao":"Troca de torneira","data":"2025-04-01","valor":"","responsavel":"João","status":"Feito"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valor must be at least 0.01")

	w = do(r, http.MethodPut, "/maintenance/mt1", `{"descricao":"Troca de torneira","data":"2025-04-01","valor":"120","responsavel":"João","status":"Feito"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 120.0, backend.updated.Value.Float64())
	assert.Equal(t, maintenance.StatusDone, backend.updated.Status)
}

func TestComplete(t *testing.T) {
	r, backend := setup()

	w := do(r, http.MethodPut, "/maintenance/mt1/complete", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mt1", backend.completed)
}
