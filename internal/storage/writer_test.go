package storage

import (
	"os"
	"path/filepath"
	"testing"

	"proxylistgen/internal/types"
)

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Proxies_List")
	w := Writer{Dir: dir, Suffix: "proxies.txt"}

	outcome := types.RunOutcome{
		"spys_me":         {Source: "spys_me", Addresses: []string{"1.2.3.4:80", "5.6.7.8:8080"}},
		"free_proxy_list": {Source: "free_proxy_list"},
	}
	paths, e := w.WriteAll(outcome, []string{"free_proxy_list", "spys_me"})
	if e != nil {
		t.Fatalf("WriteAll failed: %+v", e)
	}
	if len(paths) != 1 {
		t.Fatalf("expected exactly one file written, got %v", paths)
	}
	want := filepath.Join(dir, "spys_me_proxies.txt")
	if paths[0] != want {
		t.Errorf("wrote %s, want %s", paths[0], want)
	}

	content, e := os.ReadFile(want)
	if e != nil {
		t.Fatalf("failed to read output file: %+v", e)
	}
	if string(content) != "1.2.3.4:80\n5.6.7.8:8080\n" {
		t.Errorf("unexpected file content: %q", content)
	}

	// the empty source must not produce a file
	if _, e := os.Stat(filepath.Join(dir, "free_proxy_list_proxies.txt")); !os.IsNotExist(e) {
		t.Error("empty source produced an output file")
	}
}

func TestWriteAll_Overwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := Writer{Dir: dir, Suffix: "proxies.txt"}

	first := types.RunOutcome{"s": {Source: "s", Addresses: []string{"1.1.1.1:1", "2.2.2.2:2"}}}
	if _, e := w.WriteAll(first, []string{"s"}); e != nil {
		t.Fatalf("WriteAll failed: %+v", e)
	}
	second := types.RunOutcome{"s": {Source: "s", Addresses: []string{"3.3.3.3:3"}}}
	if _, e := w.WriteAll(second, []string{"s"}); e != nil {
		t.Fatalf("WriteAll failed: %+v", e)
	}

	content, e := os.ReadFile(filepath.Join(dir, "s_proxies.txt"))
	if e != nil {
		t.Fatalf("failed to read output file: %+v", e)
	}
	if string(content) != "3.3.3.3:3\n" {
		t.Errorf("overwrite left stale content: %q", content)
	}
}

func TestWriteAll_AllEmptySkipsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never_created")
	w := Writer{Dir: dir, Suffix: "proxies.txt"}

	outcome := types.RunOutcome{"s": {Source: "s"}}
	paths, e := w.WriteAll(outcome, []string{"s"})
	if e != nil {
		t.Fatalf("WriteAll failed: %+v", e)
	}
	if len(paths) != 0 {
		t.Errorf("expected no files written, got %v", paths)
	}
	if _, e := os.Stat(dir); !os.IsNotExist(e) {
		t.Error("output directory was created for an all-empty outcome")
	}
}
