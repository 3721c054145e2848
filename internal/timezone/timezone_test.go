package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	got, err := ParseBound("", time.UTC, false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseBound("2030-05-10T09:30:00-03:00", time.UTC, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 10, 12, 30, 0, 0, time.UTC), *got)

	got, err = ParseBound("2030-05-10", time.UTC, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseBound("2030-05-10", time.UTC, true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 10, 23, 59, 59, 999999999, time.UTC), *got)

	_, err = ParseBound("10/05/2030", time.UTC, false)
	assert.Error(t, err)
}

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
}
