// Package gateway fronts the accounts and templates replicas with a single
// reverse proxy. Replicas are independent processes sharing a service's
// database file; the gateway round-robins requests across them so clients
// need not know which replica they hit.
package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Upstreams holds the parsed replica URLs per service.
type Upstreams struct {
	Accounts  []*url.URL
	Templates []*url.URL
}

// ParseUpstreams converts raw URL lists into Upstreams, rejecting anything
// unparseable so a bad environment fails at startup rather than per request.
func ParseUpstreams(accounts, templates []string) (*Upstreams, error) {
	parse := func(raw []string) ([]*url.URL, error) {
		urls := make([]*url.URL, 0, len(raw))
		for _, r := range raw {
			u, err := url.Parse(r)
			if err != nil {
				return nil, fmt.Errorf("parse upstream %q: %w", r, err)
			}
			if u.Scheme == "" || u.Host == "" {
				return nil, fmt.Errorf("upstream %q must be an absolute URL", r)
			}
			urls = append(urls, u)
		}
		return urls, nil
	}

	accountURLs, err := parse(accounts)
	if err != nil {
		return nil, err
	}
	templateURLs, err := parse(templates)
	if err != nil {
		return nil, err
	}
	if len(accountURLs) == 0 || len(templateURLs) == 0 {
		return nil, fmt.Errorf("at least one upstream per service is required")
	}

	return &Upstreams{Accounts: accountURLs, Templates: templateURLs}, nil
}

// NewRouter builds the Echo instance that proxies to the configured
// replicas.
func NewRouter(upstreams *Upstreams, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	accountsProxy := echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer(proxyTargets(upstreams.Accounts)))
	templatesProxy := echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer(proxyTargets(upstreams.Templates)))

	// Account routes (including /login, issued by the accounts service).
	e.Group("/accounts", accountsProxy)
	e.Group("/login", accountsProxy)

	// Template routes.
	e.Group("/templates", templatesProxy)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/upstreams", listUpstreams(upstreams))

	log.Info().
		Int("accounts_replicas", len(upstreams.Accounts)).
		Int("templates_replicas", len(upstreams.Templates)).
		Msg("gateway routes registered")

	return e
}

type upstreamEntry struct {
	Service string `json:"service"`
	URL     string `json:"url"`
}

// listUpstreams reports the configured replica targets, the gateway-side
// replacement for a separate service-discovery registry.
func listUpstreams(upstreams *Upstreams) echo.HandlerFunc {
	entries := make([]upstreamEntry, 0, len(upstreams.Accounts)+len(upstreams.Templates))
	for _, u := range upstreams.Accounts {
		entries = append(entries, upstreamEntry{Service: "accounts", URL: u.String()})
	}
	for _, u := range upstreams.Templates {
		entries = append(entries, upstreamEntry{Service: "templates", URL: u.String()})
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, entries)
	}
}

func proxyTargets(urls []*url.URL) []*echomiddleware.ProxyTarget {
	targets := make([]*echomiddleware.ProxyTarget, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, &echomiddleware.ProxyTarget{URL: u})
	}
	return targets
}
