package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/eternity-labs/catalog-admin/models"
)

type stubNameStore struct{}

func (stubNameStore) ListNames() ([]string, error) { return nil, nil }
func (stubNameStore) Exists(string) (bool, error)  { return false, nil }
func (stubNameStore) Insert(string) error          { return nil }
func (stubNameStore) Rename(string, string) error  { return nil }
func (stubNameStore) Delete(string) error          { return nil }

type stubProductRepo struct{}

func (stubProductRepo) GetAll() ([]models.Product, error) { return nil, nil }
func (stubProductRepo) CodeExists(string) (bool, error)   { return false, nil }
func (stubProductRepo) Create(*models.Product) error      { return nil }

type stubCategoryRefs struct{}

func (stubCategoryRefs) All() ([]models.Category, error) { return nil, nil }

type stubLabelRefs struct{}

func (stubLabelRefs) All() ([]models.Label, error) { return nil, nil }

func newStubEngine() http.Handler {
	return New(Options{
		TemplateGlob:  "../../templates/*.html",
		SessionSecret: "secret",
		Logger:        zap.NewNop(),
		Categories:    stubNameStore{},
		Labels:        stubNameStore{},
		Products:      stubProductRepo{},
		CategoryRefs:  stubCategoryRefs{},
		LabelRefs:     stubLabelRefs{},
	})
}

func TestRoutes(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		expectedCode int
	}{
		{name: "dashboard", method: http.MethodGet, target: "/", expectedCode: http.StatusOK},
		{name: "categories list", method: http.MethodGet, target: "/categories", expectedCode: http.StatusOK},
		{name: "category add form", method: http.MethodGet, target: "/add_category", expectedCode: http.StatusOK},
		{name: "labels list", method: http.MethodGet, target: "/labels", expectedCode: http.StatusOK},
		{name: "label add form", method: http.MethodGet, target: "/add_label", expectedCode: http.StatusOK},
		{name: "products list", method: http.MethodGet, target: "/products", expectedCode: http.StatusOK},
		{name: "product add form", method: http.MethodGet, target: "/add_product", expectedCode: http.StatusOK},
		{name: "product export", method: http.MethodGet, target: "/export_products", expectedCode: http.StatusOK},
		{name: "unknown path renders 404", method: http.MethodGet, target: "/no_such_page", expectedCode: http.StatusNotFound},
	}

	engine := newStubEngine()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	engine := newStubEngine()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
