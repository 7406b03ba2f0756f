package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: 480},
		{name: "single digit hour", input: "9:30", want: 570},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "midnight", input: "00:00", want: 0},
		{name: "minutes overflow", input: "10:60", wantErr: true},
		{name: "hours overflow", input: "25:00", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "missing colon", input: "0800", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds", input: "08:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	start := MustTimeString("16:30")
	end := MustTimeString("17:00")

	assert.True(t, start.IsBefore(end))
	assert.False(t, end.IsBefore(start))
	assert.False(t, start.IsBefore(start))
	assert.Equal(t, 16, start.Hour())
	assert.Equal(t, 30, start.Minute())
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	got := MustTimeString("09:15").OnDate(2024, time.July, 4, loc)

	assert.Equal(t, time.Date(2024, time.July, 4, 9, 15, 0, 0, loc), got)

	endOfDay := MustTimeString("24:00").OnDate(2024, time.July, 4, loc)
	assert.Equal(t, time.Date(2024, time.July, 5, 0, 0, 0, 0, loc), endOfDay)
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		Start TimeString `json:"start"`
	}

	data, err := json.Marshal(payload{Start: MustTimeString("07:05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:05"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"18:45"}`), &decoded))
	assert.Equal(t, "18:45", decoded.Start.String())

	assert.Error(t, json.Unmarshal([]byte(`{"start":"18-45"}`), &decoded))
}
