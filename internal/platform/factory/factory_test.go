package factory_test

import (
	"testing"

	"bitbucket.org/crgw/reservations-e2e/internal/platform"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/factory"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlatform(t *testing.T) {
	f := factory.NewFactory(nil)

	t.Run("should build each platform once", func(t *testing.T) {
		for _, name := range []string{factory.JSON, factory.XML} {
			first, err := f.GetPlatform(name)
			require.NoError(t, err)

			second, err := f.GetPlatform(name)
			require.NoError(t, err)

			assert.Same(t, first, second)
			assert.Implements(t, (*interfaces.WithShop)(nil), first)
			assert.Implements(t, (*interfaces.WithCorrelation)(nil), first)
		}
	})

	t.Run("should reject unknown platforms", func(t *testing.T) {
		_, err := f.GetPlatform("soap")
		assert.ErrorIs(t, err, platformErrors.ErrorUnknownPlatform)
		assert.ErrorContains(t, err, "soap")
	})

	t.Run("should resolve complete platforms", func(t *testing.T) {
		p, err := platform.Get(f, factory.XML)
		require.NoError(t, err)
		assert.NotNil(t, p)

		_, err = platform.Get(f, "")
		assert.ErrorIs(t, err, platformErrors.ErrorUnknownPlatform)
	})
}
