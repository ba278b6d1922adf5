package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"inventory/internal/delivery/http/response"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProductRequest is the JSON payload for creating or updating a product.
type ProductRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"min=0"`
	Quantity   int     `json:"quantity" validate:"min=0"`
	CategoryID *int64  `json:"categoryId"`
}

// ProductResponse is the JSON view of a product.
type ProductResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Quantity   int               `json:"quantity"`
	CategoryID *int64            `json:"categoryId,omitempty"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

func toProductResponse(product *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   product.Quantity,
		CategoryID: product.CategoryID,
	}
	if product.Category != nil {
		category := toCategoryResponse(product.Category)
		resp.Category = &category
	}

	return resp
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	return responses
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	input := &usecase.ProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Quantity:     req.Quantity,
		CategoryID:   req.CategoryID,
		CategoryName: c.QueryParam("categoryName"),
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
		}
		input.CategoryID = &categoryID
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product created successfully")
}

// Get handles the single-product lookup request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved successfully")
}

// List handles the full catalog listing request.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if len(products) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// ListByCategory handles listing the products filed under one category.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	products, err := h.uc.ListProductsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &usecase.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// AssignCategory handles moving an existing product into a category.
func (h *ProductHandler) AssignCategory(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	product, err := h.uc.AssignCategory(c.Request().Context(), productID, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product category updated successfully")
}

// Search handles the name substring search request.
func (h *ProductHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")

	products, err := h.uc.SearchProducts(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// PriceRange handles the inclusive price range query.
func (h *ProductHandler) PriceRange(c echo.Context) error {
	minPrice, err := strconv.ParseFloat(c.QueryParam("min"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid minimum price")
	}
	maxPrice, err := strconv.ParseFloat(c.QueryParam("max"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid maximum price")
	}

	products, err := h.uc.ProductsInPriceRange(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// LowStock handles the low stock report request.
func (h *ProductHandler) LowStock(c echo.Context) error {
	threshold, err := strconv.Atoi(c.QueryParam("threshold"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid threshold")
	}

	products, err := h.uc.LowStockProducts(c.Request().Context(), threshold)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// OutOfStock handles the out-of-stock report request.
func (h *ProductHandler) OutOfStock(c echo.Context) error {
	products, err := h.uc.OutOfStockProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// PremiumStock handles the premium in-stock report request.
func (h *ProductHandler) PremiumStock(c echo.Context) error {
	price, err := strconv.ParseFloat(c.QueryParam("price"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
	}

	products, err := h.uc.PremiumStockProducts(c.Request().Context(), price)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// CountStock handles the in-stock count request.
func (h *ProductHandler) CountStock(c echo.Context) error {
	count, err := h.uc.CountProductsInStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Stock count retrieved successfully")
}

// TotalValue handles the total inventory value request.
func (h *ProductHandler) TotalValue(c echo.Context) error {
	total, err := h.uc.TotalInventoryValue(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"totalValue": total}, "Total inventory value retrieved successfully")
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s parameter", name)
	}

	return id, nil
}
