package loader_test

import (
	"errors"
	"testing"

	"armory/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Skips Disabled", func(t *testing.T) {
		on := &fakeFeature{name: "bones", enabled: true}
		off := &fakeFeature{name: "integrity", enabled: false}

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(on)
		mgr.Register(off)

		require.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("Stops On Error", func(t *testing.T) {
		bad := &fakeFeature{name: "equipment", enabled: true, err: errors.New("boom")}
		next := &fakeFeature{name: "bones", enabled: true}

		mgr := loader.NewManager(nil)
		mgr.Register(bad)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "equipment")
		assert.False(t, next.loaded)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		mgr := loader.NewManager(nil)
		mgr.Register(&fakeFeature{name: "bones", enabled: true})
		mgr.Register(&fakeFeature{name: "bones", enabled: true})

		assert.Error(t, mgr.LoadAll(fiber.New()))
	})
}
