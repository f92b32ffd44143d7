// Package integration resolves route labels to actionable links such
// as dialer URIs and map searches.
package integration

import (
	"strings"

	"github.com/healthbuddy-dev/healthbuddy/internal/core"
)

// RouteLinkResolver maps a route label from a triage decision to a
// link the caller can open or dial.
type RouteLinkResolver interface {
	Resolve(label string) string
	Links(labels []string) map[string]string
}

// routeLinkResolver implements RouteLinkResolver with a label-to-link
// table assembled from built-in defaults and config overrides. Labels
// are matched case-insensitively because Viper lowercases map keys
// read from the config file.
type routeLinkResolver struct {
	links map[string]string
}

// defaultRouteLinks returns the built-in link for every route label
// the rule table can emit.
func defaultRouteLinks() map[string]string {
	return map[string]string{
		core.RouteCall108:      "tel:108",
		core.RouteFindER:       "https://www.google.com/maps/search/hospital+emergency+near+me",
		core.RouteTelemedicine: "https://example-telemed.demo",
		core.RouteFindClinic:   "https://www.google.com/maps/search/clinic+near+me",
		core.RouteCallClinic:   "tel:108",
		core.RouteSelfCareTips: "https://www.who.int/health-topics",
	}
}

// NewRouteLinkResolver creates a resolver from the defaults merged
// with the given overrides. Override entries with empty values are
// ignored.
func NewRouteLinkResolver(overrides map[string]string) RouteLinkResolver {
	links := make(map[string]string)
	for label, link := range defaultRouteLinks() {
		links[strings.ToLower(label)] = link
	}
	for label, link := range overrides {
		if link == "" {
			continue
		}
		links[strings.ToLower(label)] = link
	}
	return &routeLinkResolver{links: links}
}

// Resolve returns the link for a route label, or "#" when no link is
// known for it.
func (r *routeLinkResolver) Resolve(label string) string {
	if link, ok := r.links[strings.ToLower(label)]; ok {
		return link
	}
	return "#"
}

// Links resolves a list of route labels, preserving only labels that
// appear in the input.
func (r *routeLinkResolver) Links(labels []string) map[string]string {
	out := make(map[string]string, len(labels))
	for _, label := range labels {
		out[label] = r.Resolve(label)
	}
	return out
}
