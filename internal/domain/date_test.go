package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"01/06/2025"`), &back))
}

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, StatusUnhandled.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ApplicationStatus("pending").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestBoardOptionsWithDefaults(t *testing.T) {
	o := BoardOptions{NoAvailabilityText: "Ingen"}.WithDefaults()
	assert.Equal(t, DefaultNoCompetencesText, o.NoCompetencesText)
	assert.Equal(t, "Ingen", o.NoAvailabilityText)
}

func TestProfileUpdateIsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{PNR: "19900101-1234"}.IsEmpty())
}
