package facility

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/covenant"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/pkg/id"
)

// ErrInvalidInput covers business-rule input rejections not caught by the
// edge validator (adapters map it to 400).
var ErrInvalidInput = errors.New("invalid facility input")

type Usecase struct {
	facilityRepo facility.Repository
	covenantRepo covenant.Repository
}

func NewUsecase(facilities facility.Repository, covenants covenant.Repository) *Usecase {
	return &Usecase{facilityRepo: facilities, covenantRepo: covenants}
}

// Create originates a facility. It starts active with nothing drawn.
func (u *Usecase) Create(ctx context.Context, a auth.Actor, in CreateFacilityInput) (*FacilityDTO, error) {
	if !a.CanOriginate() {
		return nil, auth.ErrForbidden
	}
	if in.FundName == "" || in.CommitmentAmount <= 0 {
		return nil, ErrInvalidInput
	}
	if in.GPUserID != "" && !id.IsID32(in.GPUserID) {
		return nil, ErrInvalidInput
	}
	if in.LenderUserID == "" || !id.IsID32(in.LenderUserID) {
		return nil, ErrInvalidInput
	}

	f := &facility.Facility{
		FacilityID:       id.NewID32(),
		FundName:         in.FundName,
		GPUserID:         in.GPUserID,
		LenderUserID:     in.LenderUserID,
		AdvisorUserID:    in.AdvisorUserID,
		CommitmentAmount: in.CommitmentAmount,
		InterestRate:     in.InterestRate,
		MaturityDate:     in.MaturityDate,
		Status:           facility.StatusActive,
	}
	if err := u.facilityRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFacilityDTO(f), nil
}

func (u *Usecase) Get(ctx context.Context, a auth.Actor, facilityID string) (*FacilityDTO, error) {
	f, err := u.getFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if !f.AccessibleBy(a) {
		return nil, auth.ErrForbidden
	}
	return toFacilityDTO(f), nil
}

// AddCovenant attaches a new compliance rule to the facility. The covenant
// starts unchecked: no status, no current value, until its first check.
func (u *Usecase) AddCovenant(ctx context.Context, a auth.Actor, facilityID string, in AddCovenantInput) (*CovenantDTO, error) {
	if !a.CanManageCovenants() {
		return nil, auth.ErrForbidden
	}
	f, err := u.getFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	op := covenant.Operator(in.ThresholdOperator)
	if !op.Valid() {
		return nil, covenant.ErrInvalidOperator
	}
	if in.CovenantType == "" || !isFinite(in.ThresholdValue) {
		return nil, ErrInvalidInput
	}
	freq := in.CheckFrequencyDays
	if freq <= 0 {
		freq = covenant.DefaultCheckFrequencyDays
	}

	c := &covenant.Covenant{
		CovenantID:         id.NewID32(),
		FacilityID:         f.ID,
		CovenantType:       in.CovenantType,
		ThresholdOperator:  op,
		ThresholdValue:     in.ThresholdValue,
		CheckFrequencyDays: freq,
	}
	if err := u.covenantRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCovenantDTO(c, f.FacilityID), nil
}

// AmendCovenant edits threshold fields only. The next check re-evaluates
// against the amended rule; current status is left as the last check wrote
// it.
func (u *Usecase) AmendCovenant(ctx context.Context, a auth.Actor, covenantID string, in AmendCovenantInput) (*CovenantDTO, error) {
	if !a.CanManageCovenants() {
		return nil, auth.ErrForbidden
	}
	c, err := u.covenantRepo.GetByCovenantID(ctx, covenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, covenant.ErrNotFound
		}
		return nil, err
	}

	if in.ThresholdOperator != nil {
		op := covenant.Operator(*in.ThresholdOperator)
		if !op.Valid() {
			return nil, covenant.ErrInvalidOperator
		}
		c.ThresholdOperator = op
	}
	if in.ThresholdValue != nil {
		if !isFinite(*in.ThresholdValue) {
			return nil, ErrInvalidInput
		}
		c.ThresholdValue = *in.ThresholdValue
	}
	if in.CheckFrequencyDays != nil {
		if *in.CheckFrequencyDays <= 0 {
			return nil, ErrInvalidInput
		}
		c.CheckFrequencyDays = *in.CheckFrequencyDays
	}

	if err := u.covenantRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	f, err := u.facilityRepo.GetByID(ctx, c.FacilityID)
	if err != nil {
		return nil, err
	}
	return toCovenantDTO(c, f.FacilityID), nil
}

func (u *Usecase) ListCovenants(ctx context.Context, a auth.Actor, facilityID string) ([]*CovenantDTO, error) {
	f, err := u.getFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if !f.AccessibleBy(a) {
		return nil, auth.ErrForbidden
	}
	covs, err := u.covenantRepo.ListByFacilityID(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*CovenantDTO, 0, len(covs))
	for _, c := range covs {
		out = append(out, toCovenantDTO(c, f.FacilityID))
	}
	return out, nil
}

func (u *Usecase) getFacility(ctx context.Context, facilityID string) (*facility.Facility, error) {
	f, err := u.facilityRepo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, facility.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
