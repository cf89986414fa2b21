package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

const (
	localsLogger    = "logger"
	localsRequestID = "requestid"
)

// newApp builds the Fiber application serving doc with handlers.
func newApp(doc *openapi3.T, handlers *Handlers, out io.Writer) (*fiber.App, []string, error) {
	app := fiber.New(fiber.Config{
		AppName:               "doce-api",
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New())
	app.Use(requestLogging(NewLogger(out)))
	app.Use(recover.New())

	endpoints, err := RegisterRoutes(app, doc, handlers.Operations())
	if err != nil {
		return nil, nil, err
	}
	return app, endpoints, nil
}

// errorHandler keeps Fiber's own status codes (unknown route, bad method)
// and reports anything else, recovered panics included, as a 400.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return failure(c, err)
}

// requestLogging tags each request with an ID and a logger bound to it.
func requestLogging(base *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		logger := base.WithRequest(id)
		c.Locals(localsRequestID, id)
		c.Locals(localsLogger, logger)
		c.Set("X-Request-ID", id)

		logger.RequestReceived(c.Method(), c.Path())
		if accept := c.Get(fiber.HeaderAccept); accept != "" {
			logger.Info(ComponentNegotiator, fmt.Sprintf("Request contains an accept header: %s", accept))
		}
		return c.Next()
	}
}

func startServer(cfg Config) {
	doc, err := loadAPIDoc()
	if err != nil {
		log.Fatal(err)
	}

	store, err := NewStore(cfg.DataFile, cfg.Locking)
	if err != nil {
		log.Fatalf("failed to load %s: %v", cfg.DataFile, err)
	}

	app, endpoints, err := newApp(doc, NewHandlers(store, doc), os.Stdout)
	if err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	logEndpoints(endpoints)
	log.Printf("🚀 Doce rankings API running at http://0.0.0.0:%d", cfg.Port)
	log.Printf("💾 Data: %s (locking=%t)", cfg.DataFile, cfg.Locking)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
