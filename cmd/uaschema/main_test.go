package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.hcl")
	require.NoError(t, os.WriteFile(broken, []byte(`
		structure "Broken" {
			id = "ns=1;i=1"
		// Missing closing brace here
	`), 0o600))

	testCases := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "help", args: []string{"-h"}, wantCode: 0, wantOut: "Usage:"},
		{name: "check builtins", args: []string{"check"}, wantCode: 0, wantOut: "OK:"},
		{name: "unknown flag", args: []string{"--this-is-not-a-valid-flag"}, wantCode: 2, wantErr: "unknown flag: --this-is-not-a-valid-flag"},
		{name: "parse failure", args: []string{"check", broken}, wantCode: 1, wantErr: "failed to parse HCL file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out, errOut bytes.Buffer
			code := run(context.Background(), &out, &errOut, tc.args)

			require.Equal(t, tc.wantCode, code, errOut.String())
			require.Contains(t, out.String(), tc.wantOut)
			require.Contains(t, errOut.String(), tc.wantErr)
		})
	}
}
