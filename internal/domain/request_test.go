package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

func TestRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		date      types.Date
		start     types.TimeString
		end       types.TimeString
		wantStart types.TimeString
		wantErr   bool
	}{
		{"canonical", "2025-06-10", "09:00", "11:00", "09:00", false},
		{"single digit hour", "2025-06-10", "9:00", "11:00", "09:00", false},
		{"padded with spaces", " 2025-06-10", " 07:00 ", "08:00", "07:00", false},
		{"short month", "2025-6-10", "09:00", "11:00", "", true},
		{"no date", "", "09:00", "11:00", "", true},
		{"bad minutes", "2025-06-10", "09:5", "11:00", "", true},
		{"hour overflow", "2025-06-10", "09:00", "24:00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{ID: "a", Date: tt.date, StartTime: tt.start, EndTime: tt.end}
			err := r.Normalize()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.StartTime)
			assert.Equal(t, types.Date("2025-06-10"), r.Date)
		})
	}
}

func TestRequest_NormalizeConfirmationMeeting(t *testing.T) {
	r := Request{
		ID:                  "a",
		Date:                "2025-06-10",
		StartTime:           "09:00",
		EndTime:             "10:00",
		ConfirmationMeeting: &ConfirmationMeeting{Date: "2025-06-09", Time: "8:30"},
	}
	require.NoError(t, r.Normalize())
	require.NotNil(t, r.ConfirmationMeeting)
	assert.Equal(t, types.TimeString("08:30"), r.ConfirmationMeeting.Time)

	r.ConfirmationMeeting = &ConfirmationMeeting{Date: "someday", Time: "08:30"}
	require.NoError(t, r.Normalize())
	assert.Nil(t, r.ConfirmationMeeting)
}
