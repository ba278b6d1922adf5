package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductUsecase scripts product usecase outcomes per test.
type stubProductUsecase struct {
	product  *entity.Product
	products []*entity.Product
	err      error

	lastCreateInput    *usecase.ProductInput
	lastAssignProduct  int64
	lastAssignCategory int64
}

func (s *stubProductUsecase) CreateProduct(_ context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	s.lastCreateInput = input

	return s.product, s.err
}

func (s *stubProductUsecase) GetProduct(_ context.Context, _ int64) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductUsecase) ListProducts(_ context.Context) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) ListProductsByCategory(_ context.Context, _ int64) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) UpdateProduct(_ context.Context, _ int64, _ *usecase.ProductInput) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductUsecase) DeleteProduct(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubProductUsecase) AssignCategory(_ context.Context, productID, categoryID int64) (*entity.Product, error) {
	s.lastAssignProduct = productID
	s.lastAssignCategory = categoryID

	return s.product, s.err
}

func (s *stubProductUsecase) SearchProducts(_ context.Context, _ string) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) ProductsInPriceRange(_ context.Context, _, _ float64) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) LowStockProducts(_ context.Context, _ int) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) OutOfStockProducts(_ context.Context) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) PremiumStockProducts(_ context.Context, _ float64) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductUsecase) CountProductsInStock(_ context.Context) (int64, error) {
	return int64(len(s.products)), s.err
}

func (s *stubProductUsecase) TotalInventoryValue(_ context.Context) (float64, error) {
	return 0, s.err
}

func TestProductHandler_Create_CategoryNameQueryParam(t *testing.T) {
	categoryID := int64(7)
	stub := &stubProductUsecase{
		product: &entity.Product{ID: 10, Name: "Laptop", Price: 999.99, Quantity: 5, CategoryID: &categoryID},
	}
	h := NewProductHandler(stub, testLogger())

	body := `{"name":"Laptop","price":999.99,"quantity":5}`
	c, rec := newHandlerTestContext(http.MethodPost, "/api/products?categoryName=Electronics", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastCreateInput)
	assert.Equal(t, "Electronics", stub.lastCreateInput.CategoryName)
	assert.Nil(t, stub.lastCreateInput.CategoryID)
}

func TestProductHandler_Create_CategoryIDQueryParam(t *testing.T) {
	stub := &stubProductUsecase{product: &entity.Product{ID: 10, Name: "Laptop"}}
	h := NewProductHandler(stub, testLogger())

	body := `{"name":"Laptop","price":999.99,"quantity":5}`
	c, _ := newHandlerTestContext(http.MethodPost, "/api/products?categoryId=3", body)

	require.NoError(t, h.Create(c))

	require.NotNil(t, stub.lastCreateInput)
	require.NotNil(t, stub.lastCreateInput.CategoryID)
	assert.Equal(t, int64(3), *stub.lastCreateInput.CategoryID)
}

func TestProductHandler_Create_InvalidCategoryIDQueryParam(t *testing.T) {
	stub := &stubProductUsecase{}
	h := NewProductHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodPost, "/api/products?categoryId=abc", `{"name":"Laptop"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.lastCreateInput)
}

func TestProductHandler_Create_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"price":9.99,"quantity":1}`},
		{name: "negative price", body: `{"name":"Laptop","price":-1,"quantity":1}`},
		{name: "negative quantity", body: `{"name":"Laptop","price":9.99,"quantity":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProductUsecase{}
			h := NewProductHandler(stub, testLogger())

			c, rec := newHandlerTestContext(http.MethodPost, "/api/products", tt.body)

			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.lastCreateInput)
		})
	}
}

func TestProductHandler_List_EmptyReturnsNoContent(t *testing.T) {
	stub := &stubProductUsecase{products: []*entity.Product{}}
	h := NewProductHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodGet, "/api/products", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProductHandler_List_ReturnsProducts(t *testing.T) {
	stub := &stubProductUsecase{
		products: []*entity.Product{
			{ID: 1, Name: "Laptop", Price: 999.99, Quantity: 5},
			{ID: 2, Name: "Mouse", Price: 19.99, Quantity: 50},
		},
	}
	h := NewProductHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodGet, "/api/products", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Mouse", envelope.Data[1].Name)
}

func TestProductHandler_AssignCategory(t *testing.T) {
	categoryID := int64(3)
	stub := &stubProductUsecase{
		product: &entity.Product{ID: 10, Name: "Laptop", CategoryID: &categoryID},
	}
	h := NewProductHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodPut, "/", "")
	c.SetPath("/api/products/:id/category/:categoryId")
	c.SetParamNames("id", "categoryId")
	c.SetParamValues("10", "3")

	require.NoError(t, h.AssignCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), stub.lastAssignProduct)
	assert.Equal(t, int64(3), stub.lastAssignCategory)
}

func TestProductHandler_AssignCategory_BadProductID(t *testing.T) {
	stub := &stubProductUsecase{}
	h := NewProductHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodPut, "/", "")
	c.SetParamNames("id", "categoryId")
	c.SetParamValues("zero", "3")

	require.NoError(t, h.AssignCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Get_UsecaseErrorPropagates(t *testing.T) {
	stub := &stubProductUsecase{err: domainerrors.ErrProductNotFound}
	h := NewProductHandler(stub, testLogger())

	c, _ := newHandlerTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("10")

	err := h.Get(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
