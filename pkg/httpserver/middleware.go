package httpserver

import (
	"time"

	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// requestLogger writes method, path, status and latency of every request.
// Server errors are logged at error level.
func requestLogger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()
		if err != nil {
			// let fiber's error handler set the status before it is read
			if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := ctx.Response().StatusCode()
		latency := time.Since(start)

		if status >= fiber.StatusInternalServerError {
			l.Error("http - %s %s - %d - %s", ctx.Method(), ctx.Path(), status, latency)
		} else {
			l.Info("http - %s %s - %d - %s", ctx.Method(), ctx.Path(), status, latency)
		}

		return nil
	}
}
