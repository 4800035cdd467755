package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid HH:MM", input: "09:30", want: "09:30"},
		{name: "valid HH:MM:SS from postgres", input: "09:30:00", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "upper bound 24:00", input: "24:00", want: "24:00"},
		{name: "missing minutes", input: "09", wantErr: ErrInvalidTimeFormat},
		{name: "not a number", input: "ab:cd", wantErr: ErrInvalidTimeFormat},
		{name: "minutes out of range", input: "09:60", wantErr: ErrInvalidTimeFormat},
		{name: "negative hours", input: "-1:00", wantErr: ErrInvalidTimeFormat},
		{name: "beyond 24:00", input: "24:01", wantErr: ErrTimeOutOfRange},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple add", start: "09:00", minutes: 45, want: "09:45"},
		{name: "crosses hour", start: "09:45", minutes: 45, want: "10:30"},
		{name: "exactly midnight boundary", start: "23:15", minutes: 45, want: "24:00"},
		{name: "past midnight fails", start: "23:30", minutes: 45, wantErr: true},
		{name: "negative result fails", start: "00:10", minutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:59").IsAfter("10:00"))

	// Сравнение нормализует секунды из Postgres
	assert.True(t, TimeString("09:00").Equal("09:00:00"))
	assert.False(t, TimeString("09:00").Equal("09:01"))
}

func TestTimeString_String_Normalizes(t *testing.T) {
	assert.Equal(t, "09:00", TimeString("09:00:00").String())
	assert.Equal(t, "09:05", TimeString("9:5").String())
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}

func TestTimeString_Scan(t *testing.T) {
	// lib/pq декодирует колонки TIME в time.Time с нулевой датой
	t.Run("time.Time from postgres TIME column", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("time.Time seconds are dropped", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 5, 59, 0, time.UTC)))
		assert.Equal(t, TimeString("09:05"), ts)
	})

	t.Run("bytes in HH:MM:SS format", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:00:00")))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("string in HH:MM format", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("23:45"))
		assert.Equal(t, TimeString("23:45"), ts)
	})

	t.Run("nil becomes zero value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("malformed string fails", func(t *testing.T) {
		var ts TimeString
		require.ErrorIs(t, ts.Scan("not a time"), ErrInvalidTimeFormat)
	})

	t.Run("unsupported source type fails", func(t *testing.T) {
		var ts TimeString
		require.ErrorIs(t, ts.Scan(int64(42)), ErrInvalidTimeFormat)
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("normalizes to HH:MM", func(t *testing.T) {
		v, err := TimeString("09:30:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "09:30", v)
	})

	t.Run("zero value becomes NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		_, err := TimeString("25:00").Value()
		require.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}
