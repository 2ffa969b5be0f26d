package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "navlend-backend/internal/adapter/http"
	"navlend-backend/internal/adapter/middleware"
	"navlend-backend/internal/adapter/repository/mysql"
	"navlend-backend/internal/config"
	"navlend-backend/internal/events"
	"navlend-backend/internal/infrastructure/cache"
	"navlend-backend/internal/infrastructure/db"
	"navlend-backend/internal/scheduler"
	complianceUC "navlend-backend/internal/usecase/compliance"
	drawdownUC "navlend-backend/internal/usecase/drawdown"
	facilityUC "navlend-backend/internal/usecase/facility"
	navreportUC "navlend-backend/internal/usecase/navreport"
	notificationUC "navlend-backend/internal/usecase/notification"
)

func main() {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Error("opening mysql", "err", err)
		os.Exit(1)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Error("opening redis", "err", err)
		os.Exit(1)
	}

	var publisher events.Publisher = &events.NoopPublisher{}
	if cfg.NATSURL != "" {
		np, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			log.Error("connecting to NATS", "err", err)
			os.Exit(1)
		}
		defer np.Close()
		publisher = np
	}

	facilities := mysql.NewFacilityRepository(gormDB)
	covenants := mysql.NewCovenantRepository(gormDB)
	reports := mysql.NewNAVReportRepository(gormDB)
	draws := mysql.NewDrawRepository(gormDB)
	notifications := mysql.NewNotificationRepository(gormDB)
	tx := mysql.NewGormUoW(gormDB)

	compliance := complianceUC.NewUsecase(facilities, covenants, reports, notifications,
		publisher, log, complianceUC.Options{StickyBreachFlag: cfg.StickyBreachFlag})
	facilitySvc := facilityUC.NewUsecase(facilities, covenants)
	reportSvc := navreportUC.NewUsecase(facilities, reports, compliance)
	drawSvc := drawdownUC.NewUsecase(tx, draws, facilities, publisher, log)
	notificationSvc := notificationUC.NewUsecase(notifications)

	sched := scheduler.New(compliance, time.Duration(cfg.CheckIntervalSecs)*time.Second, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.Register(e, httpadp.Handlers{
		Health:       httpadp.NewHandler(),
		Facility:     httpadp.NewFacilityHandler(facilitySvc),
		Compliance:   httpadp.NewComplianceHandler(compliance),
		Report:       httpadp.NewReportHandler(reportSvc),
		Draw:         httpadp.NewDrawHandler(drawSvc),
		Notification: httpadp.NewNotificationHandler(notificationSvc),
	},
		middleware.ActorMiddleware(),
		middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start(ctx)

	go func() {
		addr := ":" + cfg.AppPort
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutting down http server", "err", err)
	}
	sched.Stop()
}
