package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ib-77/strata/pkg/collections/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root, closeLogger := NewRootCmd()
	defer closeLogger()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "strata v"+Version+"\nmodule: github.com/ib-77/strata\n", out)
}

func TestQueue(t *testing.T) {
	out, _, err := run(t, "queue", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "{ 1 => 2 => 3 }\n1\n2\n3\n", out)
}

func TestStack(t *testing.T) {
	out, _, err := run(t, "stack", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "[ 1 => 2 => 3 ]\n3\n2\n1\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "queue", "a")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"message":"queue built"`)

	_, errOut, err = run(t, "queue", "a")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "queue built")
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "parse", "--lines", "2", "4", "5", "6")
	require.NoError(t, err)
	assert.Equal(t, "4: Ok(4)\n5: Ok(5)\n6: Ok(6)\nparsed 3, failed 0\n", out)
}

func TestParseFailure(t *testing.T) {
	out, _, err := run(t, "parse", "1", "x", "3")
	require.Error(t, err)
	assert.Equal(t, "1: Ok(1)\nx: Err(invalid syntax)\n3: Ok(3)\nparsed 2, failed 1\n", out)
}

func TestFailedCommandRestoresLogger(t *testing.T) {
	before := zap.L()

	_, errOut, err := run(t, "--log-level", "debug", "parse", "x")
	require.Error(t, err)
	assert.Contains(t, errOut, `"message":"parsing"`)
	assert.Same(t, before, zap.L())
}

func TestMissingConfig(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	assert.Error(t, err)
}

func TestNewRouter(t *testing.T) {
	routes := hashmap.FromMap(map[string]string{
		"/hello":      "world",
		"/index.html": "home",
	})
	srv := httptest.NewServer(newRouter(routes))
	defer srv.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	code, body := get("/hello")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "world", body)

	code, body = get("/index.html")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "home", body)

	code, _ = get("/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
