package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"diff-search/internal/changes"
	"diff-search/internal/config"
	"diff-search/internal/diff"
	"diff-search/internal/git"
	"diff-search/internal/mocks"
	"diff-search/internal/ratelimit"
	"diff-search/internal/untracked"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const workingDiff = `diff --git a/w.go b/w.go
--- a/w.go
+++ b/w.go
@@ -1,1 +1,1 @@
-old
+new
`

const stagedDiff = `diff --git a/s.go b/s.go
--- a/s.go
+++ b/s.go
@@ -1,0 +1,1 @@
+added
`

func newTestServer(t *testing.T, provider *mocks.Provider, rps, burst int) http.Handler {
	t.Helper()

	s := &Server{
		cfg:     &config.Config{Port: "0"},
		agg:     changes.New(provider, untracked.NewFiles(t.TempDir(), 1<<20, nil), nil),
		limiter: ratelimit.New(rps, burst),
	}
	return s.routes()
}

func stubAllSources(p *mocks.Provider) {
	p.On("DiffWorking", mock.Anything).Return(workingDiff, nil)
	p.On("DiffStaged", mock.Anything).Return(stagedDiff, nil)
	p.On("Untracked", mock.Anything).Return(nil, nil)
}

func do(h http.Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSearch_EndToEnd(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	h := newTestServer(t, provider, 100, 100)

	rec := do(h, "/search?q=new")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []diff.Record `json:"results"`
		Count   int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, 1, body.Count)
	require.Equal(t, diff.Record{
		File:    "w.go",
		Line:    1,
		Content: "new",
		Kind:    diff.Added,
		Source:  diff.Working,
	}, body.Results[0])
}

func TestSearch_EmptyQueryIsEmptyResult(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	rec := do(newTestServer(t, provider, 100, 100), "/search?q=")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":0`)
	require.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestSearch_ScopeFiltersBySource(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	h := newTestServer(t, provider, 100, 100)

	rec := do(h, "/search?q=added&file=S.GO&source=staged")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":1`)

	rec = do(h, "/search?q=added&file=s.go&source=working")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":0`)
}

func TestSearch_HalfScopeIsBadRequest(t *testing.T) {

	provider := mocks.NewProvider(t)

	rec := do(newTestServer(t, provider, 100, 100), "/search?q=x&file=s.go")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "scope requires both")
}

func TestSearch_InvalidPatternIsBadRequest(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	rec := do(newTestServer(t, provider, 100, 100), "/search?q=%28&regex=1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid pattern")
}

func TestSearch_ToolUnavailableIs503(t *testing.T) {

	provider := mocks.NewProvider(t)
	provider.On("DiffWorking", mock.Anything).Return("", git.ErrToolUnavailable)

	rec := do(newTestServer(t, provider, 100, 100), "/search?q=x")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	h := newTestServer(t, provider, 1, 1)

	require.Equal(t, http.StatusOK, do(h, "/changes").Code)
	require.Equal(t, http.StatusTooManyRequests, do(h, "/changes").Code)
}

func TestChanges_ReturnsAllRecords(t *testing.T) {

	provider := mocks.NewProvider(t)
	stubAllSources(provider)

	rec := do(newTestServer(t, provider, 100, 100), "/changes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":3`)
}
