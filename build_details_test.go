package convkit

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuild(t *testing.T, v, c, bt string) {
	t.Helper()
	oldV, oldC, oldBT := version, commit, buildTime
	version, commit, buildTime = v, c, bt
	t.Cleanup(func() { version, commit, buildTime = oldV, oldC, oldBT })
}

func TestBuildDefaults(t *testing.T) {
	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildTime())
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestBuildInfo(t *testing.T) {
	withBuild(t, "1.2.3", "abc1234", "2026-01-02T03:04:05Z")

	lines := strings.Split(strings.TrimSuffix(BuildInfo(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Version:    1.2.3", lines[0])
	assert.Equal(t, "Commit:     abc1234", lines[1])
	assert.Equal(t, "Build Time: 2026-01-02T03:04:05Z", lines[2])
	assert.Equal(t, "Go Version: "+runtime.Version(), lines[3])
}

func TestBuildInfo_NoControlCharacters(t *testing.T) {
	info := strings.ReplaceAll(BuildInfo(), "\n", "")
	assert.NotContains(t, info, "\r")
	assert.NotContains(t, info, "\x00")
}
