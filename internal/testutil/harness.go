package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/geotransform/internal/app"
	"github.com/vk/geotransform/internal/hcl_adapter"
)

// TmpToken is replaced with the fixture directory in every file written by
// WriteFiles, so documents can point their descriptors at it.
const TmpToken = "$TMP"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// WriteFiles creates a temporary directory, writes every file into it and
// returns the directory. Names are relative paths; parent directories are
// created as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		content = strings.ReplaceAll(content, TmpToken, filepath.ToSlash(dir))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// RunIntegrationTest writes the fixture files and runs the application on
// the document named configName, capturing debug logs.
func RunIntegrationTest(t *testing.T, files map[string]string, configName string) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	logBuffer := &bytes.Buffer{}

	appConfig := &app.Config{
		ConfigPath: filepath.Join(dir, configName),
		LogLevel:   "debug",
		LogFormat:  "text",
	}
	testApp := app.NewApp(logBuffer, appConfig, hcl_adapter.NewLoader())
	err := testApp.Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("GEOTRANSFORM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
		Dir:       dir,
	}
}

// ReadLines returns the lines of a file without the trailing newline.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
