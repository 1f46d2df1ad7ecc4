package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Skips disabled features", func(t *testing.T) {
		on := &stubFeature{name: "dataset", enabled: true}
		off := &stubFeature{name: "segments", enabled: false}

		m := NewManager()
		m.Register(on)
		m.Register(off)

		loaded, err := m.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.Equal(t, []string{"dataset"}, loaded)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("Stops on error", func(t *testing.T) {
		bad := &stubFeature{name: "matching", enabled: true, err: errors.New("boom")}
		after := &stubFeature{name: "segments", enabled: true}

		m := NewManager()
		m.Register(bad)
		m.Register(after)

		_, err := m.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "matching")
		assert.False(t, after.loaded)
	})
}
