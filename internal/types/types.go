package types

// Strategy determines how proxy addresses are extracted from a source document.
type Strategy string

const (
	// Pattern scans the raw payload for IP:PORT occurrences via regex.
	Pattern Strategy = "pattern"
	// StructuredTable walks the cells of a fixed-layout HTML table.
	StructuredTable Strategy = "table"
)

// SourceDescriptor describes one proxy list provider: where to fetch it
// and which extraction strategy applies. Descriptors are immutable and
// established once at startup.
type SourceDescriptor struct {
	//Name is the unique identifier for this source, also used to
	//derive the output file name.
	Name string
	//URL of the page or feed that lists the proxy servers.
	URL string
	//Strategy selects the extraction behavior for the fetched payload.
	Strategy Strategy
	//Selector is the cell selector for StructuredTable sources.
	Selector string
	//IsGBK indicates the page is GBK encoded and must be transformed to UTF-8.
	IsGBK bool
}

// ScrapeResult holds the addresses extracted from a single source during
// one run, in order of appearance in the source document. A failed or
// empty source yields a ScrapeResult with no addresses.
type ScrapeResult struct {
	Source    string
	Addresses []string
}

// Empty reports whether the scrape yielded no addresses.
func (r ScrapeResult) Empty() bool {
	return len(r.Addresses) == 0
}

// RunOutcome maps source name to its ScrapeResult for one collection run.
type RunOutcome map[string]ScrapeResult

// AllEmpty reports whether every source in the outcome yielded nothing.
func (o RunOutcome) AllEmpty() bool {
	for _, r := range o {
		if !r.Empty() {
			return false
		}
	}
	return true
}
