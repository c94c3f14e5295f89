package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storecore/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Id  path      string                false  "Idempotency key for this mutation"
// @Param        body            body      createProductRequest  true   "Product details"
// @Success      201             {object}  productResponse
// @Failure      400             {object}  map[string]interface{}
// @Failure      409             {object}  map[string]interface{}
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		SKU:            req.SKU,
		Name:           req.Name,
		Price:          req.Price,
		Currency:       req.Currency,
		Description:    req.Description,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyID),
		Owner:          username,
		Path:           c.Request().URL.Path,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/products/%d", product.ID))
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// GetByID handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// GetBySKU handles GET /api/products/by-sku/:sku.
//
// @Summary      Get a product by SKU
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Product SKU"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/by-sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c echo.Context) error {
	product, err := h.service.GetBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  productResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponses(products))
}

// ChangePrice handles PUT /api/products/:id/price.
//
// @Summary      Change a product's price
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Id  path      string              false  "Idempotency key for this mutation"
// @Param        id              path      int                 true   "Product id"
// @Param        body            body      changePriceRequest  true   "New price"
// @Success      200             {object}  productResponse
// @Failure      404             {object}  map[string]interface{}
// @Failure      409             {object}  map[string]interface{}
// @Router       /api/products/{id}/price [put]
func (h *ProductHandler) ChangePrice(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req changePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.ChangePrice(c.Request().Context(), ports.ChangePriceInput{
		ID:             id,
		NewPrice:       req.NewPrice,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyID),
		Owner:          username,
		Path:           c.Request().URL.Path,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        Idempotency-Id  path    string  false  "Idempotency key for this mutation"
// @Param        id              path    int     true   "Product id"
// @Success      204             "No Content"
// @Failure      404             {object}  map[string]interface{}
// @Failure      409             {object}  map[string]interface{}
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteProductInput{
		ID:             id,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyID),
		Owner:          username,
		Path:           c.Request().URL.Path,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseProductID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}
