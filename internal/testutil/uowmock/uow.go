package uowmock

import (
	"context"
	"errors"

	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinFacilityTxFn func(ctx context.Context, facilityID string, fn func(r uow.Repos, f *facility.Facility) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinFacilityTx(fn func(context.Context, string, func(uow.Repos, *facility.Facility) error) error) *UoW {
	m.WithinFacilityTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinFacilityTx(ctx context.Context, facilityID string, fn func(r uow.Repos, f *facility.Facility) error) error {
	if m.WithinFacilityTxFn != nil {
		return m.WithinFacilityTxFn(ctx, facilityID, fn)
	}
	return errUnimplemented
}

// Passthrough returns a UoW whose transactional methods run fn directly
// against the given repos, with no real transaction. FacilityFn supplies the
// row WithinFacilityTx would have locked.
func Passthrough(r uow.Repos, facilityFn func(facilityID string) (*facility.Facility, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinFacilityTxFn: func(ctx context.Context, facilityID string, fn func(r uow.Repos, f *facility.Facility) error) error {
			f, err := facilityFn(facilityID)
			if err != nil {
				return err
			}
			return fn(r, f)
		},
	}
}
