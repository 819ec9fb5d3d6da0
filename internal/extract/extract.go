package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// proxyPattern matches IP:PORT occurrences in plain text feeds.
var proxyPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){3}:[0-9]+`)

// tableGroupWidth is the number of td cells per logical row on
// free-proxy-list.net. The layout is assumed stable; if the site changes
// its column count this extractor yields garbage or nothing, which
// surfaces downstream as an empty scrape rather than an error.
const tableGroupWidth = 8

// ByPattern returns every non-overlapping IP:PORT match in text, in order
// of appearance. No-match input yields an empty result, not an error.
func ByPattern(text string) []string {
	return proxyPattern.FindAllString(text, -1)
}

// FromTable selects all table cells matching selector and walks them in
// fixed groups of 8, taking cell 0 as IP and cell 1 as port within each
// group. A trailing partial group is dropped.
func FromTable(doc *goquery.Document, selector string) (addrs []string) {
	cells := doc.Find(selector)
	n := cells.Length()
	for i := 0; i+tableGroupWidth <= n; i += tableGroupWidth {
		ip := strings.TrimSpace(cells.Eq(i).Text())
		port := strings.TrimSpace(cells.Eq(i + 1).Text())
		addrs = append(addrs, ip+":"+port)
	}
	return
}
