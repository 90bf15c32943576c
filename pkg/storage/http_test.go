package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPFetcher_OK(t *testing.T) {
	var gotUA string
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := &HTTPFetcher{UserAgent: "adwords-sdk-go/test", Timeout: time.Second}
	b, err := f.Fetch(context.Background(), srv.URL+"/api/adwords/v11/CampaignService?wsdl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "ok" {
		t.Fatalf("got %q want %q", string(b), "ok")
	}
	if gotUA != "adwords-sdk-go/test" {
		t.Fatalf("unexpected user agent %q", gotUA)
	}
}

func TestHTTPFetcher_Status(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := (&HTTPFetcher{}).Fetch(context.Background(), srv.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", se.StatusCode)
	}
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	start := time.Now()
	_, err := (&HTTPFetcher{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if dur := time.Since(start); dur > 500*time.Millisecond {
		t.Fatalf("took too long: %v", dur)
	}
}

func startHTTPServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	return httptest.NewServer(handler)
}
