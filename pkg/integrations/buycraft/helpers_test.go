package buycraft

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
)

const (
	infoBody = `{"code":0,"payload":{"latestVersion":6.2,"latestDownload":"https://dl.example/plugin.jar",` +
		`"serverId":42,"serverCurrency":"USD","serverName":"Blockland","serverStore":"https://store.example/"}}`

	packagesBody = `{"code":0,"payload":[` +
		`{"id":5,"order":1,"name":"VIP","description":"Very important","price":"4.99"},` +
		`{"id":9,"order":2,"name":"MVP","description":"Most valuable","price":9.5},` +
		`{"id":5,"order":3,"name":"VIP (legacy)","description":"","price":"3.00"}]}`

	paymentsBody = `{"code":0,"payload":[` +
		`{"time":10,"packages":[5],"ign":"Steve","price":"4.99","currency":"USD"},` +
		`{"time":20,"packages":[9,5,5],"ign":"alex","price":"19.99","currency":"USD"},` +
		`{"time":30,"packages":[9],"ign":"STEVE","price":"9.50","currency":"EUR"}]}`

	commandsBody = `{"code":0,"payload":{"commands":[` +
		`{"ign":"Steve","commands":["give Steve diamond 1","say thanks"],"requireOnline":true}]}}`

	checkerBody = `{"code":0,"payload":{` +
		`"claimables":[{"ign":"Alex","commands":["rank Alex vip"],"requireOnline":false}],` +
		`"expirys":[{"ign":"Notch","commands":["rank Notch default"],"requireOnline":true},` +
		`{"ign":"Jeb","commands":[],"requireOnline":false}]}}`
)

// fixtures maps each action to a well-formed success response.
func fixtures() map[string]string {
	return map[string]string{
		"info":     infoBody,
		"packages": packagesBody,
		"payments": paymentsBody,
		"commands": commandsBody,
		"checker":  checkerBody,
	}
}

// mockAPI is an httptest server that answers by action and records every
// request it receives.
type mockAPI struct {
	server *httptest.Server
	calls  atomic.Int32

	mu        sync.Mutex
	responses map[string]string
	queries   []url.Values
	headers   []http.Header
}

func newMockAPI(t *testing.T, responses map[string]string) *mockAPI {
	t.Helper()
	m := &mockAPI{responses: responses}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.calls.Add(1)
		q := r.URL.Query()

		m.mu.Lock()
		m.queries = append(m.queries, q)
		m.headers = append(m.headers, r.Header.Clone())
		body, ok := m.responses[q.Get("action")]
		m.mu.Unlock()

		if !ok {
			body = `{"code":102}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(m.server.Close)
	return m
}

// set replaces the response for action.
func (m *mockAPI) set(action, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[action] = body
}

func (m *mockAPI) count() int { return int(m.calls.Load()) }

func (m *mockAPI) lastQuery() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queries) == 0 {
		return nil
	}
	return m.queries[len(m.queries)-1]
}

func (m *mockAPI) lastHeader() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.headers) == 0 {
		return nil
	}
	return m.headers[len(m.headers)-1]
}

func testClient(t *testing.T, m *mockAPI, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(m.server.URL), WithHTTPClient(m.server.Client())}, opts...)
	c, err := New("test-secret", opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}
