package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
}

func TestBar_States(t *testing.T) {
	tests := []struct {
		name  string
		state State
		setup func(*Bar)
		want  string
	}{
		{
			name:  "ready",
			state: StateReady,
			want:  "Ready",
		},
		{
			name:  "typing",
			state: StateTyping,
			want:  "Typing...",
		},
		{
			name:  "searching",
			state: StateSearching,
			want:  "Searching...",
		},
		{
			name:  "error with message",
			state: StateError,
			setup: func(b *Bar) { b.SetMessage("backend down") },
			want:  "Error: backend down",
		},
		{
			name:  "results",
			state: StateResults,
			setup: func(b *Bar) { b.SetResultCount(7) },
			want:  "7 results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetState(tt.state)
			if tt.setup != nil {
				tt.setup(bar)
			}

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_ShowsSortAndDateFilter(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(3)
	bar.SetSortBy(domain.SortDate)
	bar.SetDateRange(domain.DateRangeWeek)

	rendered := bar.View()

	assert.Contains(t, rendered, "sort: date")
	assert.Contains(t, rendered, "date: week")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("oops")
	bar.SetResultCount(5)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}
