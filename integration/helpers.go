package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"
	"github.com/worldoftea/worldoftea"
	"github.com/worldoftea/worldoftea/sqlitestore"
	"github.com/worldoftea/worldoftea/visitor"
)

const (
	testServerHost = "localhost:8081"
	testOrigin     = "http://localhost:5173"
)

// testingLogWriter is an output target for zerolog which will print on the testing logger.
type testingLogWriter struct {
	c *qt.C
}

// Write outputs on the passed bytes on the test logger
func (l *testingLogWriter) Write(p []byte) (n int, err error) {
	str := string(bytes.TrimSuffix(p, []byte("\n")))
	l.c.Log(str)
	return len(p), nil
}

// A struct to hold the server and its components.
// Provides a few helpers for convenience.
type testContext struct {
	c          *qt.C
	server     *worldoftea.Server
	testServer *httptest.Server
	store      *sqlitestore.SQLiteStore
}

// newTestContext creates a server instance with its component initialized for integration testing,
// backed by a fresh database file.
func newTestContext(c *qt.C) *testContext {
	tc := testContext{c: c}

	w := testingLogWriter{c}
	output := zerolog.ConsoleWriter{Out: &w, NoColor: true}
	logger := zerolog.New(output)

	tc.store = sqlitestore.New(filepath.Join(c.TempDir(), "worldoftea.db"))
	tc.server = worldoftea.NewServer(
		&worldoftea.ServerConfig{Addr: testServerHost, AllowedOrigins: []string{testOrigin}},
		logger,
		tc.store,
		visitor.NewCookieSessions("test"),
	)
	tc.testServer = httptest.NewServer(tc.server)

	return &tc
}

// url returns an url to the test server based on the given path
func (tc *testContext) url(path string) string {
	return tc.testServer.URL + path
}

// prepareServer boots up the server and sets up its teardown for the current test
func (tc *testContext) prepareServer() {
	tc.c.Assert(tc.server.Prepare(), qt.IsNil, qt.Commentf("couldn't prepare the server"))
	tc.c.Cleanup(func() {
		tc.testServer.Close()
		tc.store.Close()
	})
}

func (tc *testContext) newHTTPClient() *http.Client {
	jar, err := cookiejar.New(nil)
	tc.c.Assert(err, qt.IsNil)

	return &http.Client{
		Jar: jar,
	}
}

// postJSON posts v as JSON to path, returning the response.
func (tc *testContext) postJSON(client *http.Client, path string, v interface{}) *http.Response {
	body, err := json.Marshal(v)
	tc.c.Assert(err, qt.IsNil)

	resp, err := client.Post(tc.url(path), "application/json", bytes.NewReader(body))
	tc.c.Assert(err, qt.IsNil)
	tc.c.Cleanup(func() { resp.Body.Close() })
	return resp
}

// getJSON fetches path and decodes the JSON response in v, returning the status code.
func (tc *testContext) getJSON(client *http.Client, path string, v interface{}) int {
	resp, err := client.Get(tc.url(path))
	tc.c.Assert(err, qt.IsNil)
	defer resp.Body.Close()

	if v != nil && resp.StatusCode < 300 {
		tc.c.Assert(json.NewDecoder(resp.Body).Decode(v), qt.IsNil)
	}
	return resp.StatusCode
}

func decode(c *qt.C, resp *http.Response, v interface{}) {
	c.Assert(json.NewDecoder(resp.Body).Decode(v), qt.IsNil)
}
