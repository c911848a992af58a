package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-console/internal/domain/dashboard"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBackend struct {
	statsErr error
}

func (f *fakeBackend) DashboardSummary(context.Context) (*dashboard.Summary, error) {
	return &dashboard.Summary{TotalProperties: 4, ActiveLeases: 3, MonthlyBalance: 2500}, nil
}
func (f *fakeBackend) RevenueExpenseChart(context.Context) ([]dashboard.ChartPoint, error) {
	return []dashboard.ChartPoint{{Month: "jan", Income: 3000, Expense: 500}}, nil
}
func (f *fakeBackend) ExpiringLeases(context.Context) ([]dashboard.ExpiringLease, error) {
	return []dashboard.ExpiringLease{{ID: "l1", DaysToExpiry: 12}}, nil
}
func (f *fakeBackend) PendingMaintenance(context.Context) ([]dashboard.PendingMaintenance, error) {
	return nil, nil
}
func (f *fakeBackend) DetailedStats(context.Context) (*dashboard.DetailedStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &dashboard.DetailedStats{DefaultingTenants: 1}, nil
}

func get(t *testing.T, backend Backend, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	h := NewDashboardHandler(backend, zap.NewNop())
	r := gin.New()
	r.GET("/dashboard/summary", h.Summary)
	r.GET("/dashboard", h.Overview)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSummary(t *testing.T) {
	w, resp := get(t, &fakeBackend{}, "/dashboard/summary")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 4.0, data["totalImoveis"])
	assert.Equal(t, 2500.0, data["saldoMensal"])
}

func TestOverview(t *testing.T) {
	w, resp := get(t, &fakeBackend{}, "/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 3.0, data["resumo"].(map[string]interface{})["contratosAtivos"])
	assert.Len(t, data["graficoReceitaDespesa"], 1)
	assert.Equal(t, 1.0, data["estatisticas"].(map[string]interface{})["locatariosInadimplentes"])
}

func TestOverview_FailsWhole(t *testing.T) {
	backend := &fakeBackend{statsErr: xerrors.NewAPIError(http.StatusUnauthorized, xerrors.ProblemDetails{})}
	w, resp := get(t, backend, "/dashboard")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
}
