package navreport

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/navreport"
	"navlend-backend/internal/usecase/compliance"
	"navlend-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid NAV report input")

// Checker is the slice of the compliance manager the report flow needs:
// every accepted report immediately re-checks the facility's covenants.
type Checker interface {
	CheckFacility(ctx context.Context, a auth.Actor, facilityID string) ([]compliance.CheckResult, error)
}

type Usecase struct {
	facilityRepo facility.Repository
	reportRepo   navreport.Repository
	checker      Checker
}

func NewUsecase(facilities facility.Repository, reports navreport.Repository, checker Checker) *Usecase {
	return &Usecase{facilityRepo: facilities, reportRepo: reports, checker: checker}
}

type SubmitInput struct {
	NAV                float64   `json:"nav"`
	LiquidAssets       float64   `json:"liquid_assets"`
	LargestPositionPct float64   `json:"largest_position_pct"`
	AsOfDate           time.Time `json:"as_of_date"`
}

type ReportDTO struct {
	ReportID           string    `json:"report_id"`
	FacilityID         string    `json:"facility_id"`
	NAV                float64   `json:"nav"`
	LiquidAssets       float64   `json:"liquid_assets"`
	LargestPositionPct float64   `json:"largest_position_pct"`
	AsOfDate           time.Time `json:"as_of_date"`
	SubmittedBy        string    `json:"submitted_by"`
	CreatedAt          time.Time `json:"created_at"`
}

// SubmitOutput carries the stored report plus the compliance check the
// submission triggered. CheckError reports a check that failed after the
// report was already accepted; the report itself stands.
type SubmitOutput struct {
	Report     *ReportDTO               `json:"report"`
	Checks     []compliance.CheckResult `json:"checks"`
	CheckError string                   `json:"check_error,omitempty"`
}

// Submit stores a NAV report for the facility and immediately re-checks
// its covenants against the fresh numbers.
func (u *Usecase) Submit(ctx context.Context, a auth.Actor, facilityID string, in SubmitInput) (*SubmitOutput, error) {
	f, err := u.facilityRepo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, facility.ErrNotFound
		}
		return nil, err
	}
	if !f.OwnedBy(a) && a.Role != auth.RoleAdmin {
		return nil, auth.ErrForbidden
	}
	if in.NAV <= 0 || !finite(in.NAV) || !finite(in.LiquidAssets) || !finite(in.LargestPositionPct) {
		return nil, ErrInvalidInput
	}
	if in.LiquidAssets < 0 || in.LargestPositionPct < 0 || in.LargestPositionPct > 100 {
		return nil, ErrInvalidInput
	}
	if in.AsOfDate.IsZero() {
		return nil, ErrInvalidInput
	}

	rep := &navreport.Report{
		ReportID:           id.NewID32(),
		FacilityID:         f.ID,
		NAV:                in.NAV,
		LiquidAssets:       in.LiquidAssets,
		LargestPositionPct: in.LargestPositionPct,
		AsOfDate:           in.AsOfDate,
		SubmittedBy:        a.UserID,
	}
	if err := u.reportRepo.Create(ctx, rep); err != nil {
		return nil, err
	}

	out := &SubmitOutput{Report: toDTO(rep, f.FacilityID)}
	checks, err := u.checker.CheckFacility(ctx, a, f.FacilityID)
	if err != nil {
		// The report is in; the check can be re-run. Surface, don't undo.
		out.CheckError = err.Error()
		return out, nil
	}
	out.Checks = checks
	return out, nil
}

func toDTO(r *navreport.Report, facilityPublicID string) *ReportDTO {
	return &ReportDTO{
		ReportID:           r.ReportID,
		FacilityID:         facilityPublicID,
		NAV:                r.NAV,
		LiquidAssets:       r.LiquidAssets,
		LargestPositionPct: r.LargestPositionPct,
		AsOfDate:           r.AsOfDate,
		SubmittedBy:        r.SubmittedBy,
		CreatedAt:          r.CreatedAt,
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
