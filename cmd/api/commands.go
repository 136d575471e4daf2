package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/client"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/emailcheck"
	"portfolio-backend/pkg/logger"

	"github.com/urfave/cli/v2"
)

type services struct {
	cfg        *config.Config
	checker    *emailcheck.AbstractClient
	dispatcher *email.Dispatcher
}

func setup() (*services, error) {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)

	// 3. Deliverability checker and mail dispatcher
	checker := emailcheck.NewAbstractClient(cfg.AbstractAPIURL, cfg.AbstractAPIKey, nil)
	dispatcher := email.NewDispatcher(email.Config{
		Host:               cfg.SMTPHost,
		Port:               cfg.SMTPPort,
		Username:           cfg.EmailUser,
		Password:           cfg.EmailAppPassword,
		Mailbox:            cfg.EmailUser,
		InsecureSkipVerify: cfg.SMTPInsecureSkipVerify,
	})

	return &services{cfg: cfg, checker: checker, dispatcher: dispatcher}, nil
}

func serve(_ *cli.Context) error {
	s, err := setup()
	if err != nil {
		return err
	}
	logger.Log.Info("Starting portfolio backend", "port", s.cfg.Port, "env", s.cfg.AppEnv)

	if !s.dispatcher.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(s.checker, s.dispatcher, s.cfg.EmailUser)
	verificationUC := usecase.NewEmailVerificationUsecase(s.checker)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.Configurable{
		"smtp":         s.dispatcher,
		"verification": s.checker,
	})

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:           contactUC,
		EmailVerificationUC: verificationUC,
		HealthUC:            healthUC,
		Config:              s.cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

func verifyEmail(c *cli.Context) error {
	addr := c.Args().First()
	if addr == "" {
		return cli.Exit("an address is required", 2)
	}

	s, err := setup()
	if err != nil {
		return err
	}

	verdict, err := usecase.NewEmailVerificationUsecase(s.checker).VerifyEmail(c.Context, addr)
	if err != nil {
		logger.Log.Warn("Verification service failed", "error", err)
	}
	fmt.Fprintf(c.App.Writer, "%s: %s\n", addr, verdict.Status)
	if !verdict.IsValid() {
		return cli.Exit(verdict.Reason, 1)
	}
	return nil
}

func checkSMTP(c *cli.Context) error {
	s, err := setup()
	if err != nil {
		return err
	}
	if !s.dispatcher.IsConfigured() {
		return cli.Exit("EMAIL_USER and EMAIL_APP_PASSWORD must be set", 2)
	}

	if err := s.dispatcher.Verify(c.Context); err != nil {
		return cli.Exit(fmt.Sprintf("relay %s unavailable: %v", s.cfg.SMTPAddr(), err), 1)
	}
	fmt.Fprintf(c.App.Writer, "relay %s ready\n", s.cfg.SMTPAddr())
	return nil
}

func sendContact(c *cli.Context) error {
	api := client.New(c.String("url"), c.String("origin"), nil)

	res, err := api.SendContact(c.Context, client.ContactForm{
		Content:     c.String("message"),
		SenderName:  c.String("name"),
		SenderEmail: c.String("email"),
		Subject:     c.String("subject"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "%s (%s)\n", res.Message, res.ID)
	return nil
}
