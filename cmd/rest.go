package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zapagenda/zapagenda/config"
	"github.com/zapagenda/zapagenda/ui/rest"
	"github.com/zapagenda/zapagenda/ui/rest/middleware"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Run the scheduler and the HTTP panel",
	Run:   restServer,
}

func init() {
	restCmd.Flags().String("basic-auth", "", "Basic auth for API (format: user:pass,user2:pass2)")
	rootCmd.AddCommand(restCmd)
}

func restServer(cmd *cobra.Command, _ []string) {
	if baFlag, _ := cmd.Flags().GetString("basic-auth"); baFlag != "" {
		config.AppBasicAuthCredential = strings.Split(baFlag, ",")
	}

	app := fiber.New(fiber.Config{
		Network: "tcp",
		AppName: "ZapAgenda",
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())

	if config.AppDebug {
		app.Use(logger.New())
	}

	if len(config.AppBasicAuthCredential) > 0 {
		account := make(map[string]string)
		for _, credential := range config.AppBasicAuthCredential {
			ba := strings.Split(credential, ":")
			if len(ba) != 2 {
				logrus.Fatalln("Basic auth is not valid, please use the format <user>:<secret>")
			}
			account[ba[0]] = ba[1]
		}
		app.Use(basicauth.New(basicauth.Config{Users: account}))
	}

	// QR images
	app.Static(config.AppBasePath+"/statics", "./statics")

	apiGroup := app.Group(config.AppBasePath + "/api")
	rest.InitRestApp(apiGroup, appUsecase)
	rest.InitRestSchedule(apiGroup, scheduleUsecase, waSession)

	// 404 only for the API group so unknown paths don't fall through to the panel
	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	// Embedded panel
	app.Get(config.AppBasePath+"/", func(c *fiber.Ctx) error {
		file, err := EmbedViews.ReadFile("views/index.html")
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Panel not found")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(file)
	})

	// Scheduler loop lifecycle is tied to the server process.
	schedulerCtx, cancel := context.WithCancel(context.Background())
	dispatcherCancel = cancel
	if err := dispatcher.Start(schedulerCtx); err != nil {
		logrus.Fatalf("failed to start scheduler: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Termination signal received, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
		StopApp()
	}()

	if err := app.Listen(":" + config.AppPort); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
