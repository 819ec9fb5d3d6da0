package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"proxylistgen/internal/logging"
	"proxylistgen/internal/types"
)

var log = logging.Logger

// Writer persists scrape results as one flat text file per source.
type Writer struct {
	// Dir is the output directory, created on first write if absent.
	Dir string
	// Suffix is appended to the source name: <name>_<suffix>.
	Suffix string
}

// WriteAll writes one file per non-empty result in the given source
// order, one address per line, overwriting prior files. The output
// directory is only created when there is something to write. It returns
// the paths written.
func (w Writer) WriteAll(outcome types.RunOutcome, order []string) (paths []string, e error) {
	if outcome.AllEmpty() {
		return nil, nil
	}
	if e = os.MkdirAll(w.Dir, 0755); e != nil {
		return nil, errors.Wrapf(e, "failed to create output directory %s", w.Dir)
	}
	for _, name := range order {
		r, ok := outcome[name]
		if !ok || r.Empty() {
			continue
		}
		p := filepath.Join(w.Dir, name+"_"+w.Suffix)
		if e = writeList(p, r.Addresses); e != nil {
			return paths, e
		}
		log.Infof("saved %d proxies to %s", len(r.Addresses), p)
		paths = append(paths, p)
	}
	return
}

func writeList(path string, addrs []string) error {
	var sb strings.Builder
	for _, a := range addrs {
		sb.WriteString(a)
		sb.WriteString("\n")
	}
	if e := os.WriteFile(path, []byte(sb.String()), 0644); e != nil {
		return errors.Wrapf(e, "failed to write %s", path)
	}
	return nil
}
