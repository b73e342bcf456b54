// The sweeper runs one reminder sweep over all users and exits. It is meant
// to be invoked by an external scheduler (cron, systemd timer). A completed
// sweep exits 0 even if individual reminders failed to send; only setup
// failures and an unreadable user list are fatal.
package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/config"
	"github.com/aliskhannn/medication-reminder/internal/notifier"
	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/medication-reminder/internal/reminder"
	adherencerepo "github.com/aliskhannn/medication-reminder/internal/repository/adherence"
	userrepo "github.com/aliskhannn/medication-reminder/internal/repository/user"
	adherencesvc "github.com/aliskhannn/medication-reminder/internal/service/adherence"
	"github.com/aliskhannn/medication-reminder/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

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
	defer func() {
		if err := db.Master.Close(); err != nil {
			zlog.Logger.Printf("failed to close master DB: %v", err)
		}
	}()

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	var notify reminder.Notifier
	switch cfg.Reminder.Dispatch {
	case "queue":
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}
		defer ch.Close()

		q, err := queue.NewReminderQueue(ch)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create reminder queue")
		}

		notify = notifier.NewQueue(q, cfg.Retry)
	case "email", "":
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		notify = notifier.NewEmail(email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		))
	default:
		zlog.Logger.Fatal().Str("dispatch", cfg.Reminder.Dispatch).Msg("unknown reminder dispatch mode")
	}

	users := userrepo.NewRepository(db)
	logs := adherencerepo.NewRepository(db)
	adherenceService := adherencesvc.NewService(logs, rdb, cfg.Retry)

	engine := reminder.NewEngine(adherenceService, notify, reminder.SystemClock{})
	sweeper := reminder.NewSweeper(users, engine)

	if err := sweeper.Run(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("sweep failed")
	}
}
