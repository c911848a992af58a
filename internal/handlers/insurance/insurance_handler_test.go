package insurance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-console/internal/domain/insurance"
	"rental-console/internal/pkg/response"
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
	policies []insurance.Insurance
	query    insurance.Query
	created  *insurance.CreateInsuranceRequest
}

func (f *fakeBackend) ListInsurance(_ context.Context, q insurance.Query) ([]insurance.Insurance, error) {
	f.query = q
	return f.policies, nil
}
func (f *fakeBackend) InsuranceByProperty(context.Context, string) ([]insurance.Insurance, error) {
	return nil, nil
}
func (f *fakeBackend) SearchInsurance(_ context.Context, q insurance.Query) ([]insurance.Insurance, error) {
	f.query = q
	return nil, nil
}
func (f *fakeBackend) ExpiringInsurance(context.Context) ([]insurance.Insurance, error) {
	return f.policies[1:2], nil
}
func (f *fakeBackend) GetInsurance(_ context.Context, id string) (*insurance.Insurance, error) {
	return &insurance.Insurance{ID: id}, nil
}
func (f *fakeBackend) CreateInsurance(_ context.Context, req *insurance.CreateInsuranceRequest) (*insurance.Insurance, error) {
	f.created = req
	return &insurance.Insurance{ID: "s-new", StartDate: req.StartDate, EndDate: req.EndDate, Value: req.Value}, nil
}
func (f *fakeBackend) UpdateInsurance(_ context.Context, id string, _ *insurance.UpdateInsuranceRequest) (*insurance.Insurance, error) {
	return &insurance.Insurance{ID: id}, nil
}
func (f *fakeBackend) DeleteInsurance(context.Context, string) error { return nil }

func setup() (*gin.Engine, *fakeBackend) {
	backend := &fakeBackend{policies: []insurance.Insurance{
		{ID: "s1", StartDate: "2024-05-01", EndDate: "2025-05-01"},
		{ID: "s2", StartDate: "2024-06-20", EndDate: "2025-06-20"},
		{ID: "s3", StartDate: "2025-01-01", EndDate: "2026-01-01"},
		{ID: "s4", EndDate: "sem data"},
	}}
	h := NewInsuranceHandler(backend, zap.NewNop())
	h.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	g := r.Group("/insurance")
	g.GET("", h.List)
	g.GET("/expiring", h.Expiring)
	g.GET("/search", h.Search)
	g.POST("", h.Create)
	return r, backend
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestList_Status(t *testing.T) {
	r, backend := setup()

	w, resp := do(r, http.MethodGet, "/insurance?seguradora=Porto&imovelId=p1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, insurance.Query{Insurer: "Porto", PropertyID: "p1"}, backend.query)

	list := resp.Data.([]interface{})
	require.Len(t, list, 4)
	want := []struct {
		status string
		days   float64
	}{
		{"Vencido", -31},
		{"Vence em breve", 19},
		{"Vigente", 214},
		{"Vencido", 0},
	}
	for i, w := range want {
		item := list[i].(map[string]interface{})
		assert.Equal(t, w.status, item["situacao"], "policy %d", i)
		assert.Equal(t, w.days, item["diasParaVencimento"], "policy %d", i)
	}
	assert.Equal(t, 365.0, list[0].(map[string]interface{})["diasVigencia"])
}

func TestExpiring(t *testing.T) {
	r, _ := setup()

	w, resp := do(r, http.MethodGet, "/insurance/expiring", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := resp.Data.([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "s2", list[0].(map[string]interface{})["id"])
}

func TestCreate_DateOrder(t *testing.T) {
	r, backend := setup()

	w, _ := do(r, http.MethodPost, "/insurance", `{"imovelId":"p1","descricao":"Incêndio","valor":450,"dataInicio":"2025-06-01","dataFim":"2025-06-01","seguradora":"Porto","apolice":"AP-123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, backend.created)

	w, resp := do(r, http.MethodPost, "/insurance", `{"imovelId":"p1","descricao":"Incêndio","valor":450,"dataInicio":"2025-06-01","dataFim":"2026-06-01","seguradora":"Porto","apolice":"AP-123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Vigente", resp.Data.(map[string]interface{})["situacao"])
}
