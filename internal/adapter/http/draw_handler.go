package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	drawdownUC "navlend-backend/internal/usecase/drawdown"
)

type DrawHandler struct{ uc *drawdownUC.Usecase }

func NewDrawHandler(uc *drawdownUC.Usecase) *DrawHandler { return &DrawHandler{uc: uc} }

type submitDrawReq struct {
	Amount  float64 `json:"amount" validate:"required,gt=0,dec2"`
	Purpose string  `json:"purpose" validate:"max=2000"`
}

func (h *DrawHandler) Submit(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req submitDrawReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	dto, err := h.uc.Submit(c.Request().Context(), actor, c.Param("facility_id"), drawdownUC.SubmitInput{
		Amount:  req.Amount,
		Purpose: req.Purpose,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DrawHandler) Get(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.uc.Get(c.Request().Context(), actor, c.Param("draw_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DrawHandler) Approve(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.uc.Approve(c.Request().Context(), actor, c.Param("draw_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DrawHandler) Reject(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.uc.Reject(c.Request().Context(), actor, c.Param("draw_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
