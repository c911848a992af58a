package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-console/internal/domain/tenant"
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
	tenants []tenant.Tenant
	created *tenant.CreateTenantRequest
}

func (f *fakeBackend) ListTenants(context.Context) ([]tenant.Tenant, error) { return f.tenants, nil }
func (f *fakeBackend) SearchTenants(context.Context, tenant.SearchParams) ([]tenant.Tenant, error) {
	return f.tenants, nil
}
func (f *fakeBackend) GetTenant(_ context.Context, id string) (*tenant.Tenant, error) {
	return &tenant.Tenant{ID: id}, nil
}
func (f *fakeBackend) CreateTenant(_ context.Context, req *tenant.CreateTenantRequest) (*tenant.Tenant, error) {
	f.created = req
	return &tenant.Tenant{ID: "t-new", Name: req.Name}, nil
}
func (f *fakeBackend) UpdateTenant(_ context.Context, id string, req *tenant.UpdateTenantRequest) (*tenant.Tenant, error) {
	return &tenant.Tenant{ID: id, Name: req.Name}, nil
}
func (f *fakeBackend) DeleteTenant(context.Context, string) error         { return nil }
func (f *fakeBackend) MarkTenantCompliant(context.Context, string) error  { return nil }
func (f *fakeBackend) MarkTenantDefaulting(context.Context, string) error { return nil }

func setup() (*gin.Engine, *fakeBackend) {
	backend := &fakeBackend{tenants: []tenant.Tenant{
		{ID: "t1", Name: "Ana", CPF: "123.456.789-00", Status: tenant.StatusCompliant},
		{ID: "t2", Name: "Bruno", CPF: "987.654.321-00", Status: tenant.StatusDefaulting},
	}}
	h := NewTenantHandler(backend, zap.NewNop())

	r := gin.New()
	r.GET("/tenants/options", h.Options)
	r.POST("/tenants", h.Create)
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

func TestOptions_CompliantOnly(t *testing.T) {
	r, _ := setup()

	w, resp := do(r, http.MethodGet, "/tenants/options", "")
	require.Equal(t, http.StatusOK, w.Code)
	options := resp.Data.([]interface{})
	require.Len(t, options, 1)
	assert.Equal(t, "Ana - 123.456.789-00", options[0].(map[string]interface{})["label"])
}

func TestCreate_NormalizesBirthDate(t *testing.T) {
	r, backend := setup()

	body := `{"nome":"Carla Dias","email":"carla@example.com","telefone":"11987654321","cpf":"12345678900","rg":"12.345.678-9",
		"dataNascimento":"1990-05-20","enderecoLogradouro":"Rua B","enderecoNumero":"10","enderecoBairro":"Centro",
		"enderecoCidade":"Campinas","enderecoEstado":"SP","enderecoCEP":"13000-000"}`
	w, _ := do(r, http.MethodPost, "/tenants", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, backend.created)
	assert.Equal(t, "1990-05-20T12:00:00.000Z", backend.created.BirthDate)
}

func TestCreate_RejectsShortCPF(t *testing.T) {
	r, backend := setup()

	body := `{"nome":"Carla Dias","email":"carla@example.com","telefone":"11987654321","cpf":"123","rg":"1",
		"dataNascimento":"1990-05-20","enderecoLogradouro":"Rua B","enderecoNumero":"10","enderecoBairro":"Centro",
		"enderecoCidade":"Campinas","enderecoEstado":"SP","enderecoCEP":"13000-000"}`
	w, resp := do(r, http.MethodPost, "/tenants", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, backend.created)
	assert.Contains(t, w.Body.String(), `"field":"cpf"`)
	assert.Len(t, resp.Data, 1)
}
