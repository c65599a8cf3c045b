package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "all fields populated",
			info: Info{Version: "v1.2.3", Commit: "abc1234", Date: "2024-01-15"},
			want: "v1.2.3 (commit: abc1234, built: 2024-01-15)",
		},
		{
			name: "all fields empty",
			info: Info{},
			want: "dev (commit: unknown, built: unknown)",
		},
		{
			name: "only commit empty",
			info: Info{Version: "v2.0.0", Date: "2024-03-25"},
			want: "v2.0.0 (commit: unknown, built: 2024-03-25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestNew_KeepsLinkTimeValues(t *testing.T) {
	t.Parallel()

	info := New("v0.3.0", "deadbee", "2026-01-02")
	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "deadbee", info.Commit)
	assert.Equal(t, "2026-01-02", info.Date)
	assert.Equal(t, runtime.Version(), info.Go)
}

func TestShortCommit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0123456", shortCommit("0123456789abcdef"))
	assert.Equal(t, "abc", shortCommit("abc"))
}
