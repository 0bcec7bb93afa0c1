package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Almacén Doña Carla", CleanText("  Almacén Doña Carla  "))
	assert.Equal(t, "&lt;script&gt;", CleanText("<script>"))
	assert.Equal(t, "", CleanText("   "))
}

func TestParseFechaChilena(t *testing.T) {
	fecha, err := ParseFechaChilena("29-08-2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), fecha)

	_, err = ParseFechaChilena("2026-08-29")
	assert.Error(t, err)
	_, err = ParseFechaChilena("31-02-2026")
	assert.Error(t, err)
}

func TestParseFechaISO(t *testing.T) {
	fecha, err := ParseFechaISO("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2026, fecha.Year())

	_, err = ParseFechaISO("29-08-2026")
	assert.Error(t, err)
}
