package testdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"bitbucket.org/crgw/reservations-e2e/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = `{
  "global": [{"currency": "AUD", "paxType": "1A"}],
  "TC1_Single_Pax": [{"paxType": "1A"}, {"paxType": "ignored"}],
  "TC2_Multi_Pax": [{"paxType": "2A1C", "day": "10", "month": 12}],
  "TC3_Inline": {"paxType": "1A1I"},
  "TC4_Empty": []
}`

func TestCase(t *testing.T) {
	file, err := testdata.Parse([]byte(fixtures))
	require.NoError(t, err)

	t.Run("should merge the global block under the case block", func(t *testing.T) {
		data, err := file.Case("TC2_Multi_Pax")
		require.NoError(t, err)

		assert.Equal(t, "2A1C", data.String("paxType"))
		assert.Equal(t, "AUD", data.String("currency"))
		assert.True(t, data.Has("day"))
		assert.False(t, data.Has("year"))

		day, err := data.Int("day")
		require.NoError(t, err)
		assert.Equal(t, 10, day)

		month, err := data.Int("month")
		require.NoError(t, err)
		assert.Equal(t, 12, month)

		_, err = data.Int("year")
		assert.Error(t, err)
	})

	t.Run("should use the first element of list blocks", func(t *testing.T) {
		data, err := file.Case("TC1_Single_Pax")
		require.NoError(t, err)
		assert.Equal(t, "1A", data.String("paxType"))
	})

	t.Run("should accept blocks written as objects", func(t *testing.T) {
		data, err := file.Case("TC3_Inline")
		require.NoError(t, err)
		assert.Equal(t, "1A1I", data.String("paxType"))
	})

	t.Run("should reject unknown and empty cases", func(t *testing.T) {
		for _, name := range []string{"TC9_Missing", "TC4_Empty", "global"} {
			_, err := file.Case(name)
			assert.ErrorIs(t, err, testdata.ErrorUnknownTestCase, name)
		}
	})

	t.Run("should list the test cases", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"TC1_Single_Pax", "TC2_Multi_Pax", "TC3_Inline"}, file.Cases())
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "createorder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("global:\n  - paxType: 1A\nTC1:\n  - paxType: 3A\n"), 0o644))

	file, err := testdata.Load(path)
	require.NoError(t, err)

	data, err := file.Case("TC1")
	require.NoError(t, err)
	assert.Equal(t, "3A", data.String("paxType"))

	_, err = testdata.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
