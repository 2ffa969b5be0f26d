package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"navlend-backend/internal/adapter/middleware"
	notificationDomain "navlend-backend/internal/domain/notification"
	"navlend-backend/internal/testutil/notificationmock"
	notificationUC "navlend-backend/internal/usecase/notification"
)

const notifID = "e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1"

func newNotificationApp(stored *notificationDomain.Notification) *echo.Echo {
	repo := &notificationmock.Repo{
		ListByRecipientFn: func(ctx context.Context, recipientUserID string, limit int) ([]*notificationDomain.Notification, error) {
			if stored != nil && stored.RecipientUserID == recipientUserID {
				return []*notificationDomain.Notification{stored}, nil
			}
			return nil, nil
		},
		GetByNotificationIDFn: func(ctx context.Context, id string) (*notificationDomain.Notification, error) {
			if stored != nil && stored.NotificationID == id {
				return stored, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		SaveFn: func(ctx context.Context, n *notificationDomain.Notification) error { return nil },
	}
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	Register(e, Handlers{
		Health:       NewHandler(),
		Notification: NewNotificationHandler(notificationUC.NewUsecase(repo)),
	}, middleware.ActorMiddleware(), passthrough)
	return e
}

func inboxItem() *notificationDomain.Notification {
	return &notificationDomain.Notification{
		ID: 1, NotificationID: notifID, RecipientUserID: lenderID,
		Type: notificationDomain.TypeCovenantBreach, Title: "Covenant breach: ltv_ratio",
		Message: "LTV covenant breached.", Priority: notificationDomain.PriorityUrgent,
		CreatedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}
}

func TestListNotifications_Handler(t *testing.T) {
	e := newNotificationApp(inboxItem())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodGet, "/notifications", "", lenderID, "lender"))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dtos []*notificationUC.NotificationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dtos) != 1 || dtos[0].NotificationID != notifID {
		t.Errorf("dtos = %+v", dtos)
	}

	// someone else's inbox is empty, not an error
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodGet, "/notifications", "", gpID, "gp"))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	dtos = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dtos) != 0 {
		t.Errorf("expected empty inbox, got %+v", dtos)
	}
}

func TestMarkNotificationRead_Handler(t *testing.T) {
	item := inboxItem()
	e := newNotificationApp(item)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodPost, "/notifications/"+notifID+"/read", "", lenderID, "lender"))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if item.ReadAt == nil {
		t.Error("ReadAt not stamped")
	}

	// only the recipient may read it, admin included
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, actorReq(http.MethodPost, "/notifications/"+notifID+"/read", "", gpID, "admin"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-recipient => want 403, got %d", rec.Code)
	}
}
