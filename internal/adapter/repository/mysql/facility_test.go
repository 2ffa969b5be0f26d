package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "navlend-backend/internal/domain/facility"
	"navlend-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type facilitySQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	FacilityID         string         `gorm:"size:32;column:facility_id"`
	FundName           string         `gorm:"column:fund_name"`
	GPUserID           string         `gorm:"column:gp_user_id"`
	LenderUserID       string         `gorm:"column:lender_user_id"`
	AdvisorUserID      string         `gorm:"column:advisor_user_id"`
	CommitmentAmount   float64        `gorm:"column:commitment_amount"`
	OutstandingBalance float64        `gorm:"column:outstanding_balance"`
	InterestRate       float64        `gorm:"column:interest_rate"`
	MaturityDate       *time.Time     `gorm:"column:maturity_date"`
	Status             string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy          string         `gorm:"column:deleted_by"`
}

func (facilitySQLite) TableName() string { return "facilities" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&facilitySQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeFacility(facilityID, gpUserID string) *domain.Facility {
	return &domain.Facility{
		FacilityID:         facilityID,
		FundName:           "Meridian Growth Fund III",
		GPUserID:           gpUserID,
		LenderUserID:       "11111111111111111111111111111111",
		CommitmentAmount:   50_000_000.00,
		OutstandingBalance: 10_000_000.00,
		InterestRate:       0.0850,
		Status:             domain.StatusActive,
	}
}

func TestCreateAndGetByFacilityID(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	facilityID := id.NewID32() // 32-char
	gp := id.NewID32()         // 32-char

	f := makeFacility(facilityID, gp)
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		t.Fatalf("GetByFacilityID: %v", err)
	}
	if got.FacilityID != facilityID || got.GPUserID != gp {
		t.Errorf("unexpected facility: %+v", got)
	}
}

func TestSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	facilityID := id.NewID32()
	f := makeFacility(facilityID, "dddddddddddddddddddddddddddddddd")

	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Update a field and persist
	f.OutstandingBalance = 12_500_000.00
	if err := repo.Save(ctx, f); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		t.Fatalf("GetByFacilityID: %v", err)
	}
	if got.OutstandingBalance != 12_500_000.00 {
		t.Errorf("OutstandingBalance not updated, got=%v want=%v", got.OutstandingBalance, 12_500_000.00)
	}
}

func TestGetByFacilityID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	_, err := repo.GetByFacilityID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGetByFacilityIDForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	facilityID := id.NewID32()
	if err := repo.Create(ctx, makeFacility(facilityID, "ffffffffffffffffffffffffffffffff")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// sqlite drops the FOR UPDATE clause; this verifies the query itself.
	got, err := repo.GetByFacilityIDForUpdate(ctx, facilityID)
	if err != nil {
		t.Fatalf("GetByFacilityIDForUpdate: %v", err)
	}
	if got.FacilityID != facilityID {
		t.Errorf("unexpected facility: %+v", got)
	}
}

func TestGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	f := makeFacility(id.NewID32(), "abababababababababababababababab")
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FacilityID != f.FacilityID {
		t.Errorf("unexpected facility: %+v", got)
	}
}

func TestTx_Commit(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	facilityID := id.NewID32()
	err := repo.Tx(ctx, func(r domain.Repository) error {
		return r.Create(ctx, makeFacility(facilityID, "11111111111111111111111111111111"))
	})
	if err != nil {
		t.Fatalf("Tx commit: %v", err)
	}

	// Should be visible after commit
	if _, err := repo.GetByFacilityID(ctx, facilityID); err != nil {
		t.Fatalf("GetByFacilityID after commit: %v", err)
	}
}

func TestTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	repo := NewFacilityRepository(db)
	ctx := context.Background()

	facilityID := id.NewID32()
	wantErr := errors.New("boom")

	_ = repo.Tx(ctx, func(r domain.Repository) error {
		if err := r.Create(ctx, makeFacility(facilityID, "22222222222222222222222222222222")); err != nil {
			return err
		}
		return wantErr // force rollback
	})

	// Should not exist after rollback
	_, err := repo.GetByFacilityID(ctx, facilityID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}
