package handlers

import (
	"bemu_storefront/internal/adapter/http/dto/response"
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/pkg/logger"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products, categories and Organiziro listings.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts returns products, or a single product when ?slug= is given.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if slug := c.Query("slug"); slug != "" {
		p, err := h.usecase.GetProductBySlug(ctx, slug)
		if err != nil {
			logger.Component(ctx, "catalog", "handler").Debug().Err(err).Str("slug", slug).Msg("get product by slug failed")
			writeError(c, mapStoreError(err))
			return
		}
		c.JSON(http.StatusOK, response.OK(response.FromProduct(p)))
		return
	}

	filter := entities.ProductFilter{
		CategorySlug: c.Query("category"),
		Featured:     strings.EqualFold(c.Query("featured"), "true"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeError(c, invalidRequest())
			return
		}
		filter.Limit = limit
	}

	products, err := h.usecase.ListProducts(ctx, filter)
	if err != nil {
		logger.Component(ctx, "catalog", "handler").Error().Err(err).Msg("list products failed")
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProducts(products)))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProduct(p)))
}

// ListCategories returns categories ordered for navigation, or one category for ?slug=.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	if slug := c.Query("slug"); slug != "" {
		cat, err := h.usecase.GetCategoryBySlug(ctx, slug)
		if err != nil {
			writeError(c, mapStoreError(err))
			return
		}
		c.JSON(http.StatusOK, response.OK(response.FromCategory(cat)))
		return
	}

	cats, err := h.usecase.ListCategories(ctx)
	if err != nil {
		logger.Component(ctx, "catalog", "handler").Error().Err(err).Msg("list categories failed")
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCategories(cats)))
}

func (h *CatalogHandler) ListOrganiziroProducts(c *gin.Context) {
	grids, boxes, err := h.usecase.ListOrganiziroProducts(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.OrganiziroProductsResponse{
		GridBases: response.FromGridBases(grids),
		Boxes:     response.FromGridBases(boxes),
	}))
}
