package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	navreportUC "navlend-backend/internal/usecase/navreport"
)

type ReportHandler struct{ uc *navreportUC.Usecase }

func NewReportHandler(uc *navreportUC.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type submitReportReq struct {
	NAV                float64   `json:"nav" validate:"required,gt=0"`
	LiquidAssets       float64   `json:"liquid_assets" validate:"gte=0"`
	LargestPositionPct float64   `json:"largest_position_pct" validate:"gte=0,lte=100"`
	AsOfDate           time.Time `json:"as_of_date" validate:"required"`
}

// Submit stores a NAV report and returns it together with the compliance
// check it triggered.
func (h *ReportHandler) Submit(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req submitReportReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	out, err := h.uc.Submit(c.Request().Context(), actor, c.Param("facility_id"), navreportUC.SubmitInput{
		NAV:                req.NAV,
		LiquidAssets:       req.LiquidAssets,
		LargestPositionPct: req.LargestPositionPct,
		AsOfDate:           req.AsOfDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
