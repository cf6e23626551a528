package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{
			name:       "second candidate rfc1123",
			candidates: []string{"", "Mon, 02 Jan 2006 15:04:05 GMT", ""},
			want:       "2006-01-02 15:04",
		},
		{
			name:       "all empty",
			candidates: []string{"", "", ""},
			want:       UnknownDate,
		},
		{
			name:       "not a date",
			candidates: []string{"not a date"},
			want:       UnknownDate,
		},
		{
			name:       "no candidates",
			candidates: nil,
			want:       UnknownDate,
		},
		{
			name:       "rfc3339 keeps its offset",
			candidates: []string{"2021-03-04T05:06:07+09:00"},
			want:       "2021-03-04 05:06",
		},
		{
			name:       "first parseable wins",
			candidates: []string{"garbage", "2020-05-06 07:08:09", "2019-01-01"},
			want:       "2020-05-06 07:08",
		},
		{
			name:       "earlier candidate has priority",
			candidates: []string{"2021-01-01 10:00:00", "2020-05-06 07:08:09"},
			want:       "2021-01-01 10:00",
		},
		{
			name:       "date surrounded by text",
			candidates: []string{"2006-01-02 15:04 (updated)"},
			want:       "2006-01-02 15:04",
		},
		{
			name:       "time without a date",
			candidates: []string{"10:30"},
			want:       UnknownDate,
		},
		{
			name:       "fraction",
			candidates: []string{"1/2"},
			want:       UnknownDate,
		},
		{
			name:       "partial date falls through to next candidate",
			candidates: []string{"10:30", "2020-05-06 07:08:09"},
			want:       "2020-05-06 07:08",
		},
		{
			name:       "trailing clock clause",
			candidates: []string{"Updated on March 5, 2023 at 4pm"},
			want:       "2023-03-05 16:00",
		},
		{
			name:       "trailing clock clause with minutes",
			candidates: []string{"2023-03-05 at 4:30 p.m."},
			want:       "2023-03-05 16:30",
		},
		{
			name:       "midnight",
			candidates: []string{"2023-03-05 at 12am"},
			want:       "2023-03-05 00:00",
		},
		{
			name:       "24 hour clock clause",
			candidates: []string{"2023-03-05 at 16:05"},
			want:       "2023-03-05 16:05",
		},
		{
			name:       "whitespace only",
			candidates: []string{"   ", "\t"},
			want:       UnknownDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDate(tt.candidates...).String())
		})
	}
}

func TestTimestamp(t *testing.T) {
	assert.False(t, Unknown.Known())
	assert.False(t, Timestamp{}.Known())
	assert.True(t, Unknown.Time().IsZero())

	tm := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	ts := At(tm)
	assert.True(t, ts.Known())
	assert.Equal(t, tm, ts.Time())
	assert.Equal(t, "2006-01-02 15:04", ts.String())

	got := ResolveDate("Mon, 02 Jan 2006 15:04:05 GMT")
	assert.True(t, got.Known())
	assert.True(t, got.Time().Equal(tm))
}
