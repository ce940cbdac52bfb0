package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchResult_ModifiedTime(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{
			name: "rfc3339",
			date: "2025-03-14T09:30:00Z",
			want: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "date only",
			date: "2025-03-14",
			want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "absent sorts as oldest",
			date: "",
			want: time.Time{},
		},
		{
			name: "unparseable never errors",
			date: "last tuesday",
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := SearchResult{DateModified: tt.date}
			assert.Equal(t, tt.want, row.ModifiedTime())
		})
	}
}
