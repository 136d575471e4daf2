package main

import (
	"os"

	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/pkg/logger"

	"github.com/urfave/cli/v2"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form relay and email verification for the portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	app := &cli.App{
		Name:   "portfolio-backend",
		Usage:  "contact form relay for the portfolio site",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:      "verify-email",
				Usage:     "run the deliverability check for one address",
				ArgsUsage: "<address>",
				Action:    verifyEmail,
			},
			{
				Name:   "check-smtp",
				Usage:  "dial and authenticate against the SMTP relay",
				Action: checkSMTP,
			},
			{
				Name:  "send",
				Usage: "submit the contact form to a running API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "API base URL"},
					&cli.StringFlag{Name: "origin", Usage: "Origin header for the CORS gate"},
					&cli.StringFlag{Name: "name", Usage: "sender name"},
					&cli.StringFlag{Name: "email", Usage: "sender address"},
					&cli.StringFlag{Name: "subject", Usage: "message subject"},
					&cli.StringFlag{Name: "message", Usage: "message body"},
				},
				Action: sendContact,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
