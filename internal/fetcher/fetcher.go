package fetcher

import (
	"bytes"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"proxylistgen/internal/extract"
	"proxylistgen/internal/logging"
	"proxylistgen/internal/network"
	"proxylistgen/internal/types"
)

var log = logging.Logger

// Fetch retrieves the document for src and extracts its proxy addresses
// according to the descriptor's strategy. Any failure is returned to the
// caller; the caller decides whether to skip the source or abort.
func Fetch(src types.SourceDescriptor, timeout time.Duration) ([]string, error) {
	log.Debugf("fetching proxy list from %s", src.URL)
	payload, e := network.HTTPGet(src.URL, timeout)
	if e != nil {
		return nil, e
	}

	switch src.Strategy {
	case types.Pattern:
		return extract.ByPattern(string(payload)), nil
	case types.StructuredTable:
		return fetchTable(src, payload)
	default:
		return nil, errors.Errorf("unsupported extraction strategy: %q", src.Strategy)
	}
}

func fetchTable(src types.SourceDescriptor, payload []byte) ([]string, error) {
	var body io.Reader = bytes.NewReader(payload)
	if src.IsGBK {
		// Convert the designated charset HTML to utf-8 encoded HTML.
		body = transform.NewReader(body, simplifiedchinese.GBK.NewDecoder())
	}
	doc, e := goquery.NewDocumentFromReader(body)
	if e != nil {
		return nil, errors.Wrapf(e, "failed to parse response body from %s", src.URL)
	}
	return extract.FromTable(doc, src.Selector), nil
}
