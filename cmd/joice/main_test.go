package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVcsInfo(t *testing.T) {
	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		wantCommit string
		wantDate   string
	}{
		{
			name:       "no vcs settings",
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
		{
			name: "revision and time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0f3c9a1b2d4e"},
				{Key: "vcs.time", Value: "2026-03-01T12:30:00Z"},
			},
			wantCommit: "0f3c9a1",
			wantDate:   "2026-03-01T12:30:00Z",
		},
		{
			name: "modified tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.modified", Value: "true"},
				{Key: "vcs.revision", Value: "0f3c9a1b2d4e"},
			},
			wantCommit: "0f3c9a1-dirty",
			wantDate:   "unknown",
		},
		{
			name: "short revision ignored",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0f3"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
		{
			name: "unrelated settings",
			settings: []debug.BuildSetting{
				{Key: "GOOS", Value: "linux"},
				{Key: "-trimpath", Value: "true"},
			},
			wantCommit: "unknown",
			wantDate:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := vcsInfo(tt.settings)
			assert.Equal(t, tt.wantCommit, c)
			assert.Equal(t, tt.wantDate, d)
		})
	}
}

func TestResolveVersion_LdflagsWin(t *testing.T) {
	old := [3]string{version, commit, date}
	t.Cleanup(func() { version, commit, date = old[0], old[1], old[2] })

	version, commit, date = "1.4.0", "deadbee", "2026-05-05"
	v, c, d := resolveVersion()
	assert.Equal(t, "1.4.0", v)
	assert.Equal(t, "deadbee", c)
	assert.Equal(t, "2026-05-05", d)
}
