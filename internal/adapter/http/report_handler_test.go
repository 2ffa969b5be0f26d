package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	covenantDomain "navlend-backend/internal/domain/covenant"
	navreportDomain "navlend-backend/internal/domain/navreport"
	"navlend-backend/internal/testutil/covenantmock"
	"navlend-backend/internal/testutil/eventsmock"
	"navlend-backend/internal/testutil/notificationmock"
	"navlend-backend/internal/testutil/reportmock"
	"navlend-backend/internal/usecase/compliance"
	navreportUC "navlend-backend/internal/usecase/navreport"
)

func newReportApp(t *testing.T) (*echo.Echo, *covenantDomain.Covenant) {
	t.Helper()
	f := seededFacility()
	f.OutstandingBalance = 36_000_000
	c := &covenantDomain.Covenant{
		ID: 1, CovenantID: covID, FacilityID: 1,
		CovenantType: covenantDomain.TypeLTVRatio, ThresholdOperator: covenantDomain.OpLessThanEqual,
		ThresholdValue: 70,
	}

	var latest *navreportDomain.Report
	reports := &reportmock.Repo{
		CreateFn: func(ctx context.Context, r *navreportDomain.Report) error {
			latest = r
			return nil
		},
		GetLatestByFacilityIDFn: func(ctx context.Context, facilityNumericID uint64) (*navreportDomain.Report, error) {
			if latest == nil {
				return nil, context.Canceled
			}
			return latest, nil
		},
	}
	covs := &covenantmock.Repo{
		ListByFacilityIDFn: func(ctx context.Context, facilityNumericID uint64) ([]*covenantDomain.Covenant, error) {
			return []*covenantDomain.Covenant{c}, nil
		},
		SaveFn: func(ctx context.Context, cc *covenantDomain.Covenant) error { return nil },
	}
	facs := facilityRepoWith(f)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	checker := compliance.NewUsecase(facs, covs, reports, &notificationmock.Repo{},
		&eventsmock.Publisher{}, log, compliance.Options{})
	uc := navreportUC.NewUsecase(facs, reports, checker)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	Register(e, Handlers{
		Health: NewHandler(),
		Report: NewReportHandler(uc),
	}, middleware.ActorMiddleware(), passthrough)
	return e, c
}

func TestSubmitReport_Handler_TriggersCheck(t *testing.T) {
	e, c := newReportApp(t)

	// outstanding 36M against a 50M NAV: LTV 72% breaches the <=70 covenant
	body := `{"nav":50000000,"liquid_assets":5000000,"largest_position_pct":12.5,"as_of_date":"2026-08-24T00:00:00Z"}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodPost, "/facilities/"+facID+"/reports", body, gpID, "gp"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out navreportUC.SubmitOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Report == nil || out.Report.NAV != 50_000_000 {
		t.Fatalf("report = %+v", out.Report)
	}
	if len(out.Checks) != 1 || out.Checks[0].Status != "breach" {
		t.Errorf("checks = %+v", out.Checks)
	}
	if c.Status == nil || *c.Status != covenantDomain.StatusBreach {
		t.Errorf("covenant not persisted: %+v", c)
	}
}

func TestSubmitReport_Handler_RejectsNonPositiveNAV(t *testing.T) {
	e, _ := newReportApp(t)

	body := `{"nav":0,"as_of_date":"2026-08-24T00:00:00Z"}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodPost, "/facilities/"+facID+"/reports", body, gpID, "gp"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("nav=0 => want 422, got %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitReport_Handler_LenderForbidden(t *testing.T) {
	e, _ := newReportApp(t)

	body := `{"nav":1000000,"as_of_date":"2026-08-24T00:00:00Z"}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodPost, "/facilities/"+facID+"/reports", body, lenderID, "lender"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("lender submitting NAV => want 403, got %d", rec.Code)
	}
}
