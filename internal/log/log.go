// Package log emits action-oriented JSON log entries through logrus.
// Helpers taking a *fiber.Ctx pick up request id, method, path and status
// so handler logs stay correlated; pass nil outside a request.
package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger. When file is non-empty,
// entries are mirrored to it in addition to stdout.
func Setup(file string) {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	logrus.SetOutput(os.Stdout)
	if file == "" {
		return
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.WithError(err).WithField("file", file).Warn("could not open log file")
		return
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
}

func fields(c *fiber.Ctx, extra map[string]any) logrus.Fields {
	f := logrus.Fields{}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

func Info(c *fiber.Ctx, action string, extra map[string]any) {
	logrus.WithFields(fields(c, extra)).Info(action)
}

// Audit records a state-changing user action (cart mutation, order placed).
func Audit(c *fiber.Ctx, action string, extra map[string]any) {
	logrus.WithFields(fields(c, extra)).WithField("audit", true).Info(action)
}

// Security records rejected or suspicious input.
func Security(c *fiber.Ctx, action string, extra map[string]any) {
	logrus.WithFields(fields(c, extra)).Warn(action)
}

func Error(c *fiber.Ctx, action string, err error, extra map[string]any) {
	logrus.WithFields(fields(c, extra)).WithError(err).Error(action)
}
