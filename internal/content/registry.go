package content

import (
	"context"
	"net/http"
	"time"
)

// Registry owns one hydrator per known section. Each section keeps its own
// slice and race guard; the registry only routes by id and shares the HTTP
// client and refresh hub.
type Registry struct {
	hydrators map[string]*Hydrator
}

func NewRegistry(baseURL string, timeout time.Duration, hub *Hub) *Registry {
	client := &http.Client{Timeout: timeout}

	r := &Registry{hydrators: make(map[string]*Hydrator, len(sections))}
	for _, s := range sections {
		h := NewHydrator(s.id, s.populate, baseURL, client, s.defaults)
		if hub != nil {
			h.onRefresh = hub.NotifyRefresh
		}
		r.hydrators[s.id] = h
	}
	return r
}

// Section returns the hydrator for a known section id.
func (r *Registry) Section(id string) (*Hydrator, bool) {
	h, ok := r.hydrators[id]
	return h, ok
}

// Load hydrates one section for a locale. Unknown sections report ok=false.
func (r *Registry) Load(ctx context.Context, id, locale string) (Slice, bool) {
	h, ok := r.hydrators[id]
	if !ok {
		return nil, false
	}
	return h.Load(ctx, locale), true
}

// WarmUp hydrates every section once for the default locale. Failures fall
// back to defaults per section, so startup never blocks on the CMS being up.
func (r *Registry) WarmUp(ctx context.Context, locale string) {
	for _, h := range r.hydrators {
		h.Load(ctx, locale)
	}
}
