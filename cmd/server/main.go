package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	logentryhandler "github.com/aliskhannn/medication-reminder/internal/api/handlers/logentry"
	userhandler "github.com/aliskhannn/medication-reminder/internal/api/handlers/user"
	"github.com/aliskhannn/medication-reminder/internal/api/router"
	"github.com/aliskhannn/medication-reminder/internal/api/server"
	"github.com/aliskhannn/medication-reminder/internal/config"
	"github.com/aliskhannn/medication-reminder/internal/notifier"
	deliveryhandler "github.com/aliskhannn/medication-reminder/internal/rabbitmq/handlers/reminder"
	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/medication-reminder/internal/reminder"
	adherencerepo "github.com/aliskhannn/medication-reminder/internal/repository/adherence"
	userrepo "github.com/aliskhannn/medication-reminder/internal/repository/user"
	adherencesvc "github.com/aliskhannn/medication-reminder/internal/service/adherence"
	usersvc "github.com/aliskhannn/medication-reminder/internal/service/user"
	"github.com/aliskhannn/medication-reminder/internal/worker"
	"github.com/aliskhannn/medication-reminder/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewReminderQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create reminder queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	users := userrepo.NewRepository(db)
	logs := adherencerepo.NewRepository(db)

	adherenceService := adherencesvc.NewService(logs, rdb, cfg.Retry)

	var notify reminder.Notifier
	switch cfg.Reminder.Dispatch {
	case "queue":
		notify = notifier.NewQueue(q, cfg.Retry)
	case "email", "":
		notify = notifier.NewEmail(emailClient)
	default:
		zlog.Logger.Fatal().Str("dispatch", cfg.Reminder.Dispatch).Msg("unknown reminder dispatch mode")
	}

	userService := usersvc.NewService(users, notify)
	engine := reminder.NewEngine(adherenceService, notify, reminder.SystemClock{})

	delivery := deliveryhandler.NewHandler(emailClient)
	dispatcher := worker.NewDispatcher(q, delivery, adherenceService)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	userHandler := userhandler.NewHandler(userService, adherenceService, engine, val)
	logHandler := logentryhandler.NewHandler(adherenceService, val)

	r := router.New(userHandler, logHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
