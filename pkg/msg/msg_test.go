package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageFromProjectCatalogue(t *testing.T) {
	assert.Equal(t, "Enter City Name", GetMessage("widget.alert.empty-input"))
	assert.Equal(t, "City Not Found", GetMessage("widget.alert.location-not-found"))
	assert.Equal(t, "Widget abc not found", GetMessage("widget.error.not-found", "abc"))
}

func TestGetMessageMissingKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nope", GetMessage("nope.nope"))
}

func TestGetMessageArgumentKinds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("test:\n  args: \"{0}|{1}|{2}|{3}|{4}\"\n"), 0o600))

	defer Init(filepathToCatalogue(t))
	Init(path)

	got := GetMessage("test.args", 10.8, uint8(3), errors.New("boom"), 1500*time.Millisecond, []string{"London, GB"})
	assert.Equal(t, `10.8|3|boom|1.5s|["London, GB"]`, got)
}

func filepathToCatalogue(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "..", "..", "configs", "messages.yml")
}
