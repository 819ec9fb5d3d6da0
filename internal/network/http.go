package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"proxylistgen/internal/conf"
	"proxylistgen/internal/logging"
)

var log = logging.Logger

// StatusError indicates the server responded with a non-200 status code.
// It is a soft failure: the source is skipped, the run continues.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// IsBadStatus reports whether err stems from a non-200 response rather
// than a transport-level failure.
func IsBadStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// HTTPGet performs a single bounded-timeout GET of link and returns the
// response body on status 200. A non-200 response yields a *StatusError;
// DNS, connection and timeout failures yield a wrapped transport error.
// No retry is attempted: one failed attempt skips the source for the run.
func HTTPGet(link string, timeout time.Duration) (body []byte, e error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, link, nil)
	if err != nil {
		// a malformed URL is a programming/config defect, not an
		// environmental condition
		log.Panicf("malformed request URL %s: %+v", link, err)
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml,"+
		"application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "close")
	if host := domainOf(link); host != "" {
		req.Header.Set("Host", host)
	}
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", conf.Args.Network.DefaultUserAgent)

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "http communication failed. url=%s", link)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: res.StatusCode}
	}

	body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body from %s", link)
	}
	return
}

// domainOf extracts the hostname from link, or "" if it cannot be parsed.
func domainOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
