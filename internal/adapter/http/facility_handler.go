package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	facilityUC "navlend-backend/internal/usecase/facility"
)

type FacilityHandler struct{ uc *facilityUC.Usecase }

func NewFacilityHandler(uc *facilityUC.Usecase) *FacilityHandler { return &FacilityHandler{uc: uc} }

type createFacilityReq struct {
	FundName         string     `json:"fund_name" validate:"required"`
	GPUserID         string     `json:"gp_user_id" validate:"omitempty,hex32"`
	LenderUserID     string     `json:"lender_user_id" validate:"required,hex32"`
	AdvisorUserID    string     `json:"advisor_user_id" validate:"omitempty,hex32"`
	CommitmentAmount float64    `json:"commitment_amount" validate:"required,gt=0,dec2"`
	InterestRate     float64    `json:"interest_rate" validate:"gte=0,lte=100"`
	MaturityDate     *time.Time `json:"maturity_date"`
}

func (h *FacilityHandler) Create(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req createFacilityReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, facilityUC.CreateFacilityInput{
		FundName:         req.FundName,
		GPUserID:         req.GPUserID,
		LenderUserID:     req.LenderUserID,
		AdvisorUserID:    req.AdvisorUserID,
		CommitmentAmount: req.CommitmentAmount,
		InterestRate:     req.InterestRate,
		MaturityDate:     req.MaturityDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FacilityHandler) Get(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.uc.Get(c.Request().Context(), actor, c.Param("facility_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type addCovenantReq struct {
	CovenantType       string  `json:"covenant_type" validate:"required"`
	ThresholdOperator  string  `json:"threshold_operator" validate:"required,oneof=less_than less_than_equal greater_than greater_than_equal"`
	ThresholdValue     float64 `json:"threshold_value" validate:"required"`
	CheckFrequencyDays int     `json:"check_frequency_days" validate:"gte=0"`
}

func (h *FacilityHandler) AddCovenant(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req addCovenantReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	dto, err := h.uc.AddCovenant(c.Request().Context(), actor, c.Param("facility_id"), facilityUC.AddCovenantInput{
		CovenantType:       req.CovenantType,
		ThresholdOperator:  req.ThresholdOperator,
		ThresholdValue:     req.ThresholdValue,
		CheckFrequencyDays: req.CheckFrequencyDays,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FacilityHandler) ListCovenants(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dtos, err := h.uc.ListCovenants(c.Request().Context(), actor, c.Param("facility_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type amendCovenantReq struct {
	ThresholdOperator  *string  `json:"threshold_operator" validate:"omitempty,oneof=less_than less_than_equal greater_than greater_than_equal"`
	ThresholdValue     *float64 `json:"threshold_value"`
	CheckFrequencyDays *int     `json:"check_frequency_days" validate:"omitempty,gt=0"`
}

func (h *FacilityHandler) AmendCovenant(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req amendCovenantReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	dto, err := h.uc.AmendCovenant(c.Request().Context(), actor, c.Param("covenant_id"), facilityUC.AmendCovenantInput{
		ThresholdOperator:  req.ThresholdOperator,
		ThresholdValue:     req.ThresholdValue,
		CheckFrequencyDays: req.CheckFrequencyDays,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
