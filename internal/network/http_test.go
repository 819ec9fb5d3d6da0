package network

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1.1.1.1:8080")
	}))
	defer ts.Close()

	body, e := HTTPGet(ts.URL, 10*time.Second)
	if e != nil {
		t.Fatalf("HTTPGet failed: %+v", e)
	}
	if string(body) != "1.1.1.1:8080" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestHTTPGet_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, e := HTTPGet(ts.URL, 10*time.Second)
	if e == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !IsBadStatus(e) {
		t.Errorf("expected StatusError, got %+v", e)
	}
}

func TestHTTPGet_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, e := HTTPGet(url, 2*time.Second)
	if e == nil {
		t.Fatal("expected transport error for unreachable host")
	}
	if IsBadStatus(e) {
		t.Errorf("transport failure misclassified as bad status: %+v", e)
	}
}

func TestHTTPGet_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer ts.Close()

	_, e := HTTPGet(ts.URL, 50*time.Millisecond)
	if e == nil {
		t.Fatal("expected timeout error")
	}
	if IsBadStatus(e) {
		t.Errorf("timeout misclassified as bad status: %+v", e)
	}
}
