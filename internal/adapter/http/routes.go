package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything Register wires onto the Echo instance.
type Handlers struct {
	Health       *Handler
	Facility     *FacilityHandler
	Compliance   *ComplianceHandler
	Report       *ReportHandler
	Draw         *DrawHandler
	Notification *NotificationHandler
}

// Register mounts all routes. actorMW and idempMW guard every route except
// /health and /metrics; idempMW additionally covers only mutating methods
// (it passes GETs through on its own).
func Register(e *echo.Echo, h Handlers, actorMW, idempMW echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := e.Group("", actorMW, idempMW)

	g.POST("/facilities", h.Facility.Create)
	g.GET("/facilities/:facility_id", h.Facility.Get)
	g.POST("/facilities/:facility_id/covenants", h.Facility.AddCovenant)
	g.GET("/facilities/:facility_id/covenants", h.Facility.ListCovenants)
	g.PATCH("/covenants/:covenant_id", h.Facility.AmendCovenant)

	g.POST("/covenants/:covenant_id/checks", h.Compliance.CheckCovenant)
	g.POST("/facilities/:facility_id/checks", h.Compliance.CheckFacility)

	g.POST("/facilities/:facility_id/reports", h.Report.Submit)

	g.POST("/facilities/:facility_id/draws", h.Draw.Submit)
	g.GET("/draws/:draw_id", h.Draw.Get)
	g.POST("/draws/:draw_id/approve", h.Draw.Approve)
	g.POST("/draws/:draw_id/reject", h.Draw.Reject)

	g.GET("/notifications", h.Notification.List)
	g.POST("/notifications/:notification_id/read", h.Notification.MarkRead)
}
