package logger_test

import (
	"net/http/httptest"
	"testing"

	"armory/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		debug bool
	}{
		{"Debug Console", logger.Config{Level: "debug", Format: "console"}, true},
		{"Info JSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Warn Default Format", logger.Config{Level: "warn"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = logger.New(&logger.Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/tagged", func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "ray-1")
		logger.WithRayID(base, c).Info("tagged")
		return nil
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("plain")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/tagged", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	tagged := logs.FilterMessage("tagged").All()
	require.Len(t, tagged, 1)
	assert.Equal(t, "ray-1", tagged[0].ContextMap()["ray_id"])

	plain := logs.FilterMessage("plain").All()
	require.Len(t, plain, 1)
	assert.NotContains(t, plain[0].ContextMap(), "ray_id")
}
