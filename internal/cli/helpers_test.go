package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
)

var testResponses = map[string]string{
	"info": `{"code":0,"payload":{"latestVersion":"6.2","latestDownload":"https://dl.example/plugin.jar",` +
		`"serverId":42,"serverCurrency":"USD","serverName":"Blockland","serverStore":"https://store.example"}}`,
	"packages": `{"code":0,"payload":[` +
		`{"id":5,"order":1,"name":"VIP","description":"Very important","price":"4.99"},` +
		`{"id":9,"order":2,"name":"MVP","description":"Most valuable","price":"9.50"},` +
		`{"id":5,"order":3,"name":"Legacy VIP","description":"","price":"3.00"}]}`,
	"payments": `{"code":0,"payload":[` +
		`{"time":10,"packages":[5],"ign":"Steve","price":"4.99","currency":"USD"},` +
		`{"time":20,"packages":[9,5],"ign":"Alex","price":"14.49","currency":"USD"},` +
		`{"time":30,"packages":[9],"ign":"Notch","price":"9.50","currency":"EUR"}]}`,
	"commands": `{"code":0,"payload":{"commands":[` +
		`{"ign":"Steve","commands":["give Steve diamond 1","say thanks"],"requireOnline":true}]}}`,
	"checker": `{"code":0,"payload":{` +
		`"claimables":[{"ign":"Alex","commands":["rank Alex vip"],"requireOnline":false}],` +
		`"expirys":[{"ign":"Jeb","commands":["rank Jeb default"],"requireOnline":true}]}}`,
}

// quietOutput redirects command output into buffers for the duration of t.
func quietOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return out, errOut
}

// fakeAPI serves responses by action and counts requests.
func fakeAPI(t *testing.T, responses map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body, ok := responses[r.URL.Query().Get("action")]
		if !ok {
			body = `{"code":102}`
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

// runCLI executes the root command against baseURL with an isolated config
// directory and returns what was printed to stdout.
func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	return runCLILogged(t, baseURL, io.Discard, LogInfo, args...)
}

// runCLILogged is runCLI with the CLI logger writing to logs at level.
func runCLILogged(t *testing.T, baseURL string, logs io.Writer, level log.Level, args ...string) (string, error) {
	t.Helper()
	out, _ := quietOutput(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUYCRAFT_BASE_URL", baseURL)

	c := New(logs, level)
	root := c.RootCommand()
	root.SetArgs(append([]string{"--secret", "test-secret"}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
