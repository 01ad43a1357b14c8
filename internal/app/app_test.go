package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boilerHCL = `
structure "Boiler" {
  namespace = 2
  id        = 5001
  field "State"  { type = "BoilerState" }
  field "Status" { type = "ServerStatusDataType" }
  field "Range"  { type = "Range" }
}

enumeration "BoilerState" {
  id = "ns=2;i=5002"
  values {
    Idle    = 0
    Heating = 1
  }
}
`

func writeDeclarations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestApp_LoadWithBuiltins(t *testing.T) {
	dir := writeDeclarations(t, map[string]string{"boiler.hcl": boilerHCL})
	a, logs := SetupAppTest(t, &Config{Paths: []string{dir}})

	res, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, registry.StateFinalized, a.Registry().State())
	assert.Equal(t, len(coreModules), res.Modules)
	assert.Len(t, res.Files, 1)

	d, err := res.Catalog.Lookup("2:Boiler")
	require.NoError(t, err)
	view := Describe(d)
	require.Len(t, view.Fields, 3)
	assert.Equal(t, "ns=2;i=5002", view.Fields[0].Target)
	assert.Equal(t, "ns=0;i=862", view.Fields[1].Target)
	assert.Equal(t, "ns=0;i=884", view.Fields[2].Target)

	assert.Contains(t, logs.String(), "Bootstrap complete.")
}

func TestApp_BuiltinModulesAreNotShared(t *testing.T) {
	first, _ := SetupAppTest(t, &Config{})
	require.Len(t, first.modules, len(coreModules))
	for i := range first.modules {
		first.modules[i] = nil
	}

	for i, m := range coreModules {
		assert.NotNil(t, m, "builtin module %d", i)
	}

	second, _ := SetupAppTest(t, &Config{})
	res, err := second.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(coreModules), res.Modules)
}

func TestApp_LoadWithoutBuiltins(t *testing.T) {
	dir := writeDeclarations(t, map[string]string{"boiler.hcl": boilerHCL})
	a, _ := SetupAppTest(t, &Config{Paths: []string{dir}, NoBuiltins: true})

	_, err := a.Load(context.Background())
	require.ErrorIs(t, err, registry.ErrUnresolvedFieldType)
	assert.Contains(t, err.Error(), `"ServerStatusDataType"`)
	assert.Contains(t, err.Error(), `"Range"`)
	assert.Equal(t, registry.StateFailed, a.Registry().State())
}

func TestApp_Handler(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{})
	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	_, err = a.Load(context.Background())
	require.NoError(t, err)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	testCases := []struct {
		path       string
		wantStatus int
		wantName   string
	}{
		{"/descriptors/ns=0;i=852", http.StatusOK, "ServerState"},
		{"/descriptors/0:BuildInfo", http.StatusOK, "BuildInfo"},
		{"/descriptors/UtcTime", http.StatusOK, "UtcTime"},
		{"/descriptors/ns=0;i=424242", http.StatusNotFound, ""},
		{"/descriptors/ns=0;i=-1", http.StatusBadRequest, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantName == "" {
				return
			}
			var view DescriptorView
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
			assert.Equal(t, tc.wantName, view.Name)
		})
	}

	resp, err = http.Get(srv.URL + "/descriptors")
	require.NoError(t, err)
	defer resp.Body.Close()
	var views []DescriptorView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	enums, structs := a.Registry().Counts()
	assert.Len(t, views, enums+structs)
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{})
	_, err := a.Load(context.Background())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_ServeWithoutPort(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{})
	assert.ErrorContains(t, a.Serve(context.Background()), "no port configured")
}
