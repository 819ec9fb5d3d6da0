package collector

import (
	"time"

	"proxylistgen/internal/fetcher"
	"proxylistgen/internal/logging"
	"proxylistgen/internal/registry"
	"proxylistgen/internal/types"
)

var log = logging.Logger

// Collector runs one scrape pass over a fixed source registry.
type Collector struct {
	registry *registry.Registry
	timeout  time.Duration
}

// New creates a Collector over the given registry with a per-request
// fetch timeout.
func New(reg *registry.Registry, timeout time.Duration) *Collector {
	return &Collector{registry: reg, timeout: timeout}
}

// Run fetches and extracts every registered source sequentially, in
// registry order. A failing source is recorded as an empty ScrapeResult
// and never aborts the remaining sources.
func (c *Collector) Run() types.RunOutcome {
	outcome := make(types.RunOutcome, len(c.registry.Names()))
	for _, src := range c.registry.All() {
		result := types.ScrapeResult{Source: src.Name}
		addrs, e := fetcher.Fetch(src, c.timeout)
		if e != nil {
			log.Errorf("failed to scrape %s, skipping: %+v", src.Name, e)
		} else {
			result.Addresses = addrs
			log.Infof("%d proxies scraped from %s", len(addrs), src.Name)
		}
		outcome[src.Name] = result
	}
	return outcome
}

// Order returns the source names in the deterministic order results
// should be reported and written, regardless of how they were collected.
func (c *Collector) Order() []string {
	return c.registry.Names()
}
