package property

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-console/internal/domain/property"
	xerrors "rental-console/internal/pkg/errors"
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
	properties []property.Property
	created    *property.CreatePropertyRequest
	searched   string
	toggled    map[string]bool
}

func (f *fakeBackend) ListProperties(context.Context) ([]property.Property, error) {
	return f.properties, nil
}

func (f *fakeBackend) SearchProperties(_ context.Context, params property.SearchParams) ([]property.Property, error) {
	f.searched = params.Term
	return f.properties[:1], nil
}

func (f *fakeBackend) GetProperty(_ context.Context, id string) (*property.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, xerrors.NewAPIError(http.StatusNotFound, xerrors.ProblemDetails{Title: "Imóvel não encontrado"})
}

func (f *fakeBackend) CreateProperty(_ context.Context, req *property.CreatePropertyRequest) (*property.Property, error) {
	f.created = req
	return &property.Property{ID: "new", Title: req.Title}, nil
}

func (f *fakeBackend) UpdateProperty(_ context.Context, id string, req *property.UpdatePropertyRequest) (*property.Property, error) {
	return &property.Property{ID: id, Title: req.Title}, nil
}

func (f *fakeBackend) DeleteProperty(context.Context, string) error { return nil }

func (f *fakeBackend) ActivateProperty(_ context.Context, id string) error {
	f.toggled[id] = true
	return nil
}

func (f *fakeBackend) DeactivateProperty(_ context.Context, id string) error {
	f.toggled[id] = false
	return nil
}

func setup() (*gin.Engine, *fakeBackend) {
	backend := &fakeBackend{
		properties: []property.Property{
			{ID: "p1", Title: "Apto Centro", Active: true, SuggestedRent: 1800, Address: property.Address{City: "Campinas", State: "SP"}},
			{ID: "p2", Title: "Casa Praia", Active: false, Address: property.Address{City: "Santos", State: "SP"}},
		},
		toggled: map[string]bool{},
	}
	h := NewPropertyHandler(backend, zap.NewNop())

	r := gin.New()
	g := r.Group("/properties")
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/options", h.Options)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id/activate", h.Activate)
	g.PUT("/:id/deactivate", h.Deactivate)
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

func TestOptions_ActiveOnly(t *testing.T) {
	r, _ := setup()

	w, resp := do(r, http.MethodGet, "/properties/options", "")
	require.Equal(t, http.StatusOK, w.Code)
	options := resp.Data.([]interface{})
	require.Len(t, options, 1)
	opt := options[0].(map[string]interface{})
	assert.Equal(t, "p1", opt["value"])
	assert.Equal(t, "Apto Centro - Campinas/SP", opt["label"])
}

func TestSearch_PassesTerm(t *testing.T) {
	r, backend := setup()

	w, _ := do(r, http.MethodGet, "/properties/search?termo=centro", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "centro", backend.searched)
}

func TestGet_NotFound(t *testing.T) {
	r, _ := setup()

	w, resp := do(r, http.MethodGet, "/properties/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Imóvel não encontrado", resp.Message)
}

func TestCreate_Validation(t *testing.T) {
	r, backend := setup()

	w, resp := do(r, http.MethodPost, "/properties", `{"tipo":"Apartamento","titulo":"Ap","descricao":"curta","endereco":{"logradouro":"Rua A","numero":"1","bairro":"Centro","cidade":"Campinas","estado":"SPX","cep":"13000000"},"areaM2":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, backend.created)

	var fields []validation.FieldError
	raw, _ := json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.True(t, validation.Errors(fields).Has("titulo"))
	assert.True(t, validation.Errors(fields).Has("descricao"))
	assert.True(t, validation.Errors(fields).Has("endereco.estado"))

	w, _ = do(r, http.MethodPost, "/properties", `{"tipo":"Apartamento","titulo":"Apto Novo","descricao":"Apartamento de dois quartos","endereco":{"logradouro":"Rua A","numero":"1","bairro":"Centro","cidade":"Campinas","estado":"SP","cep":"13000-000"},"areaM2":50,"quartos":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, backend.created)
	assert.Equal(t, 2, backend.created.Bedrooms)
}

func TestToggle(t *testing.T) {
	r, backend := setup()

	w, _ := do(r, http.MethodPut, "/properties/p2/activate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(r, http.MethodPut, "/properties/p1/deactivate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"p2": true, "p1": false}, backend.toggled)
}
