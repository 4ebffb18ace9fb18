package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		name     string
		event    db.Event
		contains string
		color    string
	}{
		{"open slots are green", db.Event{MaxVolunteers: 10, CurrentVolunteers: 3}, "[3/10]", colorGreen},
		{"full event is yellow", db.Event{MaxVolunteers: 5, CurrentVolunteers: 5}, "[5/5] full", colorYellow},
		{"over capacity still full", db.Event{MaxVolunteers: 5, CurrentVolunteers: 6}, "[6/5] full", colorYellow},
		{"cancelled is red", db.Event{Canceled: true, MaxVolunteers: 5, CurrentVolunteers: 5}, "[cancelled]", colorRed},
		{"empty event is green", db.Event{MaxVolunteers: 1}, "[0/1]", colorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := slotLabel(tt.event)
			assert.Contains(t, label, tt.contains)
			assert.True(t, strings.HasPrefix(label, tt.color))
		})
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, colorYellow, statusColor(db.PendingStatusPending))
	assert.Equal(t, colorGreen, statusColor(db.PendingStatusApproved))
	assert.Equal(t, colorRed, statusColor(db.PendingStatusRejected))
}
