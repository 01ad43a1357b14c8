package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/uaschema/internal/app"
	"github.com/specialistvlad/uaschema/internal/bootstrap"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer = app.SafeBuffer

// HarnessResult holds the outcomes of a load run.
type HarnessResult struct {
	Dir       string
	LogOutput string
	Err       error
	App       *app.App
	Result    *bootstrap.Result
}

// WriteFiles writes files (relative path to content) into a fresh temporary
// directory and returns it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// RunLoad writes files into a temporary directory and loads it with a
// debug-logging app. Without modules only the files are loaded.
func RunLoad(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunLoadWithContext(context.Background(), t, files, modules...)
}

// RunLoadWithContext is RunLoad with a caller-provided context.
func RunLoadWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	cfg := &app.Config{
		Paths:       []string{dir},
		WorkerCount: 2,
		NoBuiltins:  len(modules) == 0,
	}
	testApp, logBuffer := app.SetupAppTest(t, cfg, modules...)
	res, err := testApp.Load(ctx)

	return &HarnessResult{
		Dir:       dir,
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
		Result:    res,
	}
}
