package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/convkit/converrors"
)

func TestUnixRoundTrip(t *testing.T) {
	ts, err := ParseUnix("1700000000")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14T22:13", HumanDate(ts))

	back, err := ParseHuman(HumanDate(ts), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1699999980), back, "human form has minute precision")

	_, err = ParseUnix("yesterday")
	assert.ErrorIs(t, err, converrors.ErrValidation)
}

func TestParseHuman(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		in   string
		loc  *time.Location
		want int64
	}{
		{"1970-01-01T00:00", nil, 0},
		{"1970-01-01", nil, 0},
		{"1970-01-01 00:01:05", nil, 65},
		{"1970-01-01T09:00", tokyo, 0},
		{"1970-01-01T01:00:00+01:00", tokyo, 0},
	}
	for _, tt := range tests {
		got, err := ParseHuman(tt.in, tt.loc)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "soon", "2024-13-01"} {
		_, err := ParseHuman(bad, nil)
		assert.ErrorIs(t, err, converrors.ErrValidation, bad)
	}
}

func TestInZone(t *testing.T) {
	ts := FromUnix(1700000000)
	assert.Equal(t, "11/14/2023, 22:13:20", InZone(ts, "UTC"))
	assert.Equal(t, "11/14/2023, 17:13:20", InZone(ts, "America/New_York"))
	assert.Equal(t, "11/15/2023, 07:13:20", InZone(ts, "Asia/Tokyo"))
	assert.Equal(t, "2023-11-14T22:13:20.000Z", InZone(ts, "Mars/Olympus"))
	assert.Equal(t, "2023-11-14T22:13:20.000Z", InZone(ts, ""))
}

func TestZones_Load(t *testing.T) {
	list := Zones()
	require.Len(t, list, 11)
	assert.Equal(t, "UTC", list[0].ID)
	for _, z := range list {
		_, err := time.LoadLocation(z.ID)
		assert.NoError(t, err, z.ID)
	}
}

func TestFormats(t *testing.T) {
	got := Formats(time.Date(2024, time.March, 5, 14, 7, 9, 250_000_000, time.UTC))
	assert.Equal(t, []Representation{
		{"ISO 8601", "2024-03-05T14:07:09.250Z"},
		{"UTC", "2024-03-05 14:07:09 UTC"},
		{"Date", "3/5/2024"},
		{"Time", "2:07:09 PM"},
		{"Unix Timestamp", "1709647629"},
		{"Milliseconds", "1709647629250"},
	}, got)
}
