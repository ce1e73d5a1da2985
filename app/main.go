package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ayumukasuga/bloglist/internal/blogservice"
	"github.com/ayumukasuga/bloglist/internal/common"
	"github.com/ayumukasuga/bloglist/internal/mailservice"
	"github.com/ayumukasuga/bloglist/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
	mailService *mailservice.MailService
	broker      *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("could not load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("could not connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	amqpURI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(amqpURI)
	if err != nil {
		logger.Error("could not connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	if err := broker.SetupUserExchange(); err != nil {
		logger.Error("could not set up the user exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The read cache is shared between services so that a write through one
	// service invalidates entries cached by the other.
	cache := common.NewCache(5*time.Minute, 10*time.Minute)
	tokens := userservice.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, broker, cache, tokens, logger),
		blogService: blogservice.NewBlogService(db, cache, cfg.UpdateOwnershipCheck),
		broker:      broker,
		mailService: mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, logger),
	}

	// Start the welcome email consumer before accepting requests.
	app.mailService.SendWelcomeEmail()

	if err := app.serve(cfg.Port); err != nil {
		logger.Error("server stopped with an error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
