package handlers

import (
	"bemu_storefront/internal/adapter/http/dto/request"
	"bemu_storefront/internal/adapter/http/dto/response"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/pkg/logger"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DrawerHandler struct {
	usecase usecase.IDrawerUseCase
}

func NewDrawerHandler(uc usecase.IDrawerUseCase) *DrawerHandler {
	return &DrawerHandler{usecase: uc}
}

// Calculate godoc
// @Summary Recommend grid bases for a drawer
// @Description Dimensions are in centimetres; strings with comma decimals are accepted.
// @Tags organiziro
// @Accept json
// @Produce json
// @Param body body request.DrawerRequest true "Drawer dimensions"
// @Success 200 {object} response.Envelope{data=response.DrawerCalculationResponse}
// @Failure 400 {object} pkg.HTTPError
// @Router /organiziro/calculate [post]
func (h *DrawerHandler) Calculate(c *gin.Context) {
	var req request.DrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, mapStoreError(request.ErrInvalidLength))
		return
	}
	width, height, err := req.Resolve()
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}

	calc, err := h.usecase.Calculate(c.Request.Context(), width, height)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCalculation(calc)))
}

// ExportLayout streams the drawer layout and bill of materials as an .xlsx workbook.
func (h *DrawerHandler) ExportLayout(c *gin.Context) {
	ctx := c.Request.Context()
	req := request.DrawerRequest{WidthCM: request.Length(c.Query("width_cm")), HeightCM: request.Length(c.Query("height_cm"))}
	width, height, err := req.Resolve()
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}

	b, calc, err := h.usecase.ExportLayout(ctx, width, height)
	if err != nil {
		logger.Component(ctx, "drawer", "handler").Debug().Err(err).Msg("export layout failed")
		writeError(c, mapStoreError(err))
		return
	}
	filename := fmt.Sprintf("organiziro-%dx%d.xlsx", calc.WidthUnits, calc.HeightUnits)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, b)
}
