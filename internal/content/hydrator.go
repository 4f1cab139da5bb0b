package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"leprive/internal/pkg/logger"
)

// Hydrator keeps the content slice for a single section hydrated from the CMS.
// It starts out holding the built-in defaults and replaces them with managed
// content whenever a fetch for the current locale succeeds. Fetch failures are
// logged and swallowed: the section keeps rendering whatever it last held.
type Hydrator struct {
	section  string
	populate string
	baseURL  string
	client   *http.Client
	log      *zap.Logger

	// onRefresh, when set, is invoked after a successful load is applied.
	onRefresh func(section, locale string, seq uint64)

	mu       sync.RWMutex
	defaults Slice
	current  Slice
	locale   string
	seq      uint64 // newest issued request; stale responses are discarded
}

func NewHydrator(section, populate, baseURL string, client *http.Client, defaults Slice) *Hydrator {
	if client == nil {
		client = http.DefaultClient
	}
	return &Hydrator{
		section:  section,
		populate: populate,
		baseURL:  baseURL,
		client:   client,
		log:      logger.Get().Named("content"),
		defaults: defaults,
		current:  defaults.Clone(),
	}
}

func (h *Hydrator) Section() string { return h.section }

// Snapshot returns the slice currently held and the locale it was loaded for.
// Before any successful load the locale is empty and the slice is the defaults.
func (h *Hydrator) Snapshot() (Slice, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Clone(), h.locale
}

// Load fetches the section for the given locale and returns the slice held
// afterwards. Every call issues exactly one request; there are no retries and
// no cross-instance cache. A response only lands if no newer Load has been
// issued in the meantime, so under rapid locale switching the last selected
// locale always wins regardless of network resolution order.
func (h *Hydrator) Load(ctx context.Context, locale string) Slice {
	h.mu.Lock()
	h.seq++
	seq := h.seq
	h.mu.Unlock()

	data, err := h.fetch(ctx, locale)
	if err != nil {
		h.log.Warn("content fetch failed, keeping current slice",
			zap.String("section", h.section),
			zap.String("locale", locale),
			zap.Error(err),
		)
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.current.Clone()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if seq != h.seq {
		// A newer request was issued while this one was in flight.
		return h.current.Clone()
	}
	h.current = merge(h.defaults, data)
	h.locale = locale
	if h.onRefresh != nil {
		go h.onRefresh(h.section, locale, seq)
	}
	return h.current.Clone()
}

func (h *Hydrator) fetch(ctx context.Context, locale string) (Slice, error) {
	q := url.Values{}
	if h.populate != "" {
		q.Set("populate", h.populate)
	}
	q.Set("locale", locale)

	u := fmt.Sprintf("%s/api/%s?%s", h.baseURL, h.section, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%s: unexpected status %d", h.section, res.StatusCode)
	}

	var body struct {
		Data Slice `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", h.section, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("%s: response has no data field", h.section)
	}
	return body.Data, nil
}

// LoadList fetches a collection endpoint (`data` is an array, not a record).
// Unlike Load it propagates the error: list consumers have their own fallback.
func LoadList(ctx context.Context, client *http.Client, baseURL, section, locale string) ([]map[string]any, error) {
	if client == nil {
		client = http.DefaultClient
	}

	q := url.Values{}
	q.Set("locale", locale)
	u := fmt.Sprintf("%s/api/%s?%s", baseURL, section, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%s: unexpected status %d", section, res.StatusCode)
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", section, err)
	}
	return body.Data, nil
}
