package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	"navlend-backend/internal/usecase/compliance"
)

type ComplianceHandler struct{ uc *compliance.Usecase }

func NewComplianceHandler(uc *compliance.Usecase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

type checkCovenantReq struct {
	// Pointer so a missing value is distinguishable from an explicit zero.
	CurrentValue *float64 `json:"current_value" validate:"required"`
}

// CheckCovenant runs a manual one-off check with an operator-supplied
// value.
func (h *ComplianceHandler) CheckCovenant(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req checkCovenantReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	res, err := h.uc.CheckCovenant(c.Request().Context(), actor, c.Param("covenant_id"), *req.CurrentValue)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// CheckFacility re-evaluates every covenant of the facility against its
// latest NAV report.
func (h *ComplianceHandler) CheckFacility(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	results, err := h.uc.CheckFacility(c.Request().Context(), actor, c.Param("facility_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"results": results})
}
