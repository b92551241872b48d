package dto

import (
	"testing"
	"time"

	"paperhelp/internal/app/ds"

	"github.com/stretchr/testify/assert"
)

func TestTimeLeft(t *testing.T) {
	now := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		status   string
		want     string
	}{
		{"mixed units", now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second), ds.StatusInProgress, "2d 3h 4m 5s"},
		{"under a minute", now.Add(59 * time.Second), ds.StatusAwaitingWriter, "0d 0h 0m 59s"},
		{"exactly now", now, ds.StatusInProgress, DeadlinePassed},
		{"passed", now.Add(-time.Hour), ds.StatusInProgress, DeadlinePassed},
		{"completed has no countdown", now.Add(time.Hour), ds.StatusCompleted, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeLeft(tt.deadline, now, tt.status))
		})
	}
}
