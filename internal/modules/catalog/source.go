package catalog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"leprive/internal/content"
	"leprive/internal/domain"
)

// ListingSource supplies the localized companion list. The production source
// is the CMS collection endpoint; tests substitute their own.
type ListingSource interface {
	FetchCompanions(ctx context.Context, locale string) ([]domain.Companion, error)
}

type CMSSource struct {
	baseURL string
	client  *http.Client
}

func NewCMSSource(baseURL string, client *http.Client) *CMSSource {
	return &CMSSource{baseURL: baseURL, client: client}
}

func (s *CMSSource) FetchCompanions(ctx context.Context, locale string) ([]domain.Companion, error) {
	raw, err := content.LoadList(ctx, s.client, s.baseURL, "companions", locale)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Companion, 0, len(raw))
	for _, item := range raw {
		out = append(out, formatCompanion(item))
	}
	return out, nil
}

// formatCompanion normalizes one CMS record into the card shape the gallery
// renders: numeric price to "R$ {n}/h", localized "always available" copy to
// the Available flag, missing rating and tags to zero values.
func formatCompanion(raw map[string]any) domain.Companion {
	c := domain.Companion{
		ID:          asInt64(raw["id"]),
		Name:        asString(raw["name"]),
		Age:         int(asInt64(raw["age"])),
		Location:    asString(raw["location"]),
		Rating:      asFloat(raw["rating"]),
		Reviews:     int(asInt64(raw["reviews"])),
		Description: asString(raw["description"]),
		Tags:        asStrings(raw["tags"]),
	}

	if p, ok := raw["price"]; ok && p != nil {
		c.Price = "R$ " + trimFloat(asFloat(p)) + "/h"
	}

	availability := asString(raw["availability"])
	switch {
	case availability == "":
		c.Availability = domain.AvailabilityUnavailable
	case strings.Contains(strings.ToLower(availability), "zawsze"):
		c.Availability = domain.AvailabilityAvailable
	default:
		c.Availability = availability
	}

	return c
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func asInt64(v any) int64 {
	f, _ := v.(float64)
	return int64(f)
}

func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
