package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NotNil(t, c)
	assert.Positive(t, c.Len())
	assert.NotEmpty(t, c.Bucket(VibeNormal))
	for _, action := range dogActions {
		p := c.PhotoFor(action, 12345, 0)
		assert.NotEmpty(t, p.URL, "action %q", action)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := LoadCatalog([]byte(`
photos:
  - url: /a.jpg
    alt: A
    vibe: playing
  - url: /b.jpg
    vibe: normal
`))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, []Photo{{URL: "/a.jpg", Alt: "A", Vibe: VibePlaying}}, c.Bucket(VibePlaying))
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := LoadCatalog([]byte("photos:\n  - vibe: normal\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url is required")
	})

	t.Run("missing vibe", func(t *testing.T) {
		_, err := LoadCatalog([]byte("photos:\n  - url: /x.jpg\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vibe is required")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadCatalog([]byte("photos: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse photo catalog")
	})
}

func TestCatalog_PhotoFor(t *testing.T) {
	c, err := NewCatalog([]Photo{
		{URL: "/play-0.jpg", Vibe: VibePlaying},
		{URL: "/play-1.jpg", Vibe: VibePlaying},
		{URL: "/play-2.jpg", Vibe: VibePlaying},
		{URL: "/normal-0.jpg", Vibe: VibeNormal},
		{URL: "/normal-1.jpg", Vibe: VibeNormal},
	})
	require.NoError(t, err)

	t.Run("index is seed plus position modulo bucket", func(t *testing.T) {
		assert.Equal(t, "/play-1.jpg", c.PhotoFor("zoomies", 10, 0).URL)
		assert.Equal(t, "/play-2.jpg", c.PhotoFor("zoomies", 10, 1).URL)
		assert.Equal(t, "/play-0.jpg", c.PhotoFor("zoomies", 10, 2).URL)
	})

	t.Run("large seed does not overflow", func(t *testing.T) {
		// (2^32-1 + 1) % 3 == 1
		assert.Equal(t, "/play-1.jpg", c.PhotoFor("zoomies", 0xFFFFFFFF, 1).URL)
	})

	t.Run("empty vibe falls back to normal", func(t *testing.T) {
		assert.Empty(t, c.Bucket(VibeWater))
		p := c.PhotoFor("swimming", 3, 0)
		assert.Equal(t, VibeNormal, p.Vibe)
		assert.Equal(t, "/normal-1.jpg", p.URL)
	})

	t.Run("unknown action uses normal", func(t *testing.T) {
		assert.Equal(t, VibeNormal, c.PhotoFor("juggling", 0, 0).Vibe)
	})

	t.Run("no normal photos yields zero photo", func(t *testing.T) {
		only, err := NewCatalog([]Photo{{URL: "/p.jpg", Vibe: VibePlaying}})
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			assert.Equal(t, Photo{}, only.PhotoFor("sleeping", 1, 1))
		})
	})
}

func TestAboutForAction(t *testing.T) {
	for _, action := range dogActions {
		assert.NotEqual(t, defaultAbout, aboutForAction(action), "action %q has no canned sentence", action)
		_, ok := actionVibes[action]
		assert.True(t, ok, "action %q has no vibe", action)
	}
	assert.Equal(t, defaultAbout, aboutForAction("juggling"))
}
