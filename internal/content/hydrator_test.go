package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() Slice {
	return Slice{
		"title":    "Our Elite Collection",
		"subtitle": "Default subtitle",
		"navItems": []any{},
	}
}

func newTestHydrator(t *testing.T, handler http.HandlerFunc) (*Hydrator, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h := NewHydrator("companions-gallery-content", "*", srv.URL, srv.Client(), testDefaults())
	return h, srv
}

func TestHydrator_LoadMergesOverDefaults(t *testing.T) {
	h, _ := newTestHydrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companions-gallery-content", r.URL.Path)
		assert.Equal(t, "pl", r.URL.Query().Get("locale"))
		assert.Equal(t, "*", r.URL.Query().Get("populate"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"title":"Nasza Kolekcja","navItems":[{"name":"Start","href":"#"}]}}`))
	})

	got := h.Load(context.Background(), "pl")

	// Present keys overwrite, absent keys keep the default, arrays verbatim.
	assert.Equal(t, "Nasza Kolekcja", got["title"])
	assert.Equal(t, "Default subtitle", got["subtitle"])
	require.Len(t, got["navItems"], 1)

	snap, locale := h.Snapshot()
	assert.Equal(t, "pl", locale)
	assert.Equal(t, got, snap)
}

func TestHydrator_FetchFailureKeepsDefaults(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"http 500": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"http 404": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":`))
		},
		"missing data field": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meta":{}}`))
		},
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestHydrator(t, handler)

			got := h.Load(context.Background(), "en")

			assert.Equal(t, testDefaults(), got, "failed fetch must render exactly the defaults")
			_, locale := h.Snapshot()
			assert.Empty(t, locale, "a failed load must not claim a locale")
		})
	}
}

func TestHydrator_ConnectionRefusedKeepsDefaults(t *testing.T) {
	h := NewHydrator("footer-content", "*", "http://127.0.0.1:1", &http.Client{Timeout: time.Second}, testDefaults())

	got := h.Load(context.Background(), "en")

	assert.Equal(t, testDefaults(), got)
}

func TestHydrator_FailureKeepsPreviouslyLoadedSlice(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	h, _ := newTestHydrator(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		failNow := fail
		mu.Unlock()
		if failNow {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"title":"Managed title"}}`))
	})

	first := h.Load(context.Background(), "en")
	require.Equal(t, "Managed title", first["title"])

	mu.Lock()
	fail = true
	mu.Unlock()

	second := h.Load(context.Background(), "pl")
	assert.Equal(t, "Managed title", second["title"], "failed refetch keeps the previously held slice")
	_, locale := h.Snapshot()
	assert.Equal(t, "en", locale)
}

func TestHydrator_LastSelectedLocaleWins(t *testing.T) {
	release := make(chan struct{})
	h, _ := newTestHydrator(t, func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("locale")
		if locale == "pl" {
			// Simulate a slow CMS response for the first locale.
			<-release
			_, _ = w.Write([]byte(`{"data":{"title":"Polish title"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"title":"English title"}}`))
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.Load(context.Background(), "pl")
	}()

	// Give the slow request time to be issued before switching locales.
	time.Sleep(50 * time.Millisecond)
	h.Load(context.Background(), "en")

	close(release)
	wg.Wait()

	snap, locale := h.Snapshot()
	assert.Equal(t, "en", locale, "last selected locale must win regardless of resolution order")
	assert.Equal(t, "English title", snap["title"])
}

func TestRegistry_LoadUnknownSection(t *testing.T) {
	r := NewRegistry("http://127.0.0.1:1", time.Second, nil)

	_, ok := r.Load(context.Background(), "no-such-section", "en")
	assert.False(t, ok)

	for _, id := range Sections() {
		_, ok := r.Section(id)
		assert.True(t, ok, "section %s must be registered", id)
	}
}

func TestMerge_NilValuesDoNotOverride(t *testing.T) {
	out := merge(Slice{"a": "default"}, Slice{"a": nil, "b": "new"})

	assert.Equal(t, "default", out["a"])
	assert.Equal(t, "new", out["b"])
}
