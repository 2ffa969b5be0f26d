package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"navlend-backend/internal/adapter/middleware"
	notificationUC "navlend-backend/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notificationUC.Usecase }

func NewNotificationHandler(uc *notificationUC.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dtos, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.uc.MarkRead(c.Request().Context(), actor, c.Param("notification_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
