package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yohoo/startpage/internal/domain"
)

func TestFetchTitleHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, DefaultUserAgent)
		}
		_, _ = fmt.Fprint(w, `<html><head><title>Remote Page</title></head></html>`)
	}))
	defer srv.Close()

	title, err := New(0).FetchTitle(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchTitle error: %v", err)
	}
	if title != "Remote Page" {
		t.Errorf("title = %q, want %q", title, "Remote Page")
	}
}

func TestFetchTitleHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(0).FetchTitle(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("error %v must wrap ErrNetwork", err)
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error = %q, want it to name the status code", err)
	}
}

func TestFetchTitleHTTPNoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	_, err := New(0).FetchTitle(context.Background(), srv.URL)
	if err == nil || err.Error() != "no title found in page" {
		t.Errorf("err = %v, want %q", err, "no title found in page")
	}
}

func TestFetchTitleTooManyRedirects(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+"/again", http.StatusFound)
	}))
	defer srv.Close()

	_, err := New(0).FetchTitle(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "too many redirects") {
		t.Errorf("err = %v, want a redirect-limit error", err)
	}
}

func TestFetchTitleTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(20 * time.Millisecond).FetchTitle(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "timeout after") {
		t.Errorf("err = %v, want a timeout error", err)
	}
}

func TestFetchTitleConnectionFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(0).FetchTitle(context.Background(), url)
	if err == nil || !strings.Contains(err.Error(), "connection failed") {
		t.Errorf("err = %v, want a connection error", err)
	}
}

func TestFetchTitleFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("title element", func(t *testing.T) {
		path := write("plain.html", `<html><head><title>Local File</title></head></html>`)
		title, err := New(0).FetchTitle(context.Background(), "file://"+path)
		if err != nil {
			t.Fatalf("FetchTitle error: %v", err)
		}
		if title != "Local File" {
			t.Errorf("title = %q, want %q", title, "Local File")
		}
	})

	t.Run("og title only", func(t *testing.T) {
		path := write("og.html", `<html><head><meta property="og:title" content="OG From Disk"></head></html>`)
		title, err := New(0).FetchTitle(context.Background(), "file://"+path)
		if err != nil {
			t.Fatalf("FetchTitle error: %v", err)
		}
		if title != "OG From Disk" {
			t.Errorf("title = %q, want %q", title, "OG From Disk")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(0).FetchTitle(context.Background(), "file://"+filepath.Join(dir, "nope.html"))
		if err == nil || err.Error() != "file not found" {
			t.Errorf("err = %v, want %q", err, "file not found")
		}
	})

	t.Run("not utf8", func(t *testing.T) {
		path := write("binary.html", "\xff\xfe\x00broken")
		_, err := New(0).FetchTitle(context.Background(), "file://"+path)
		if err == nil || err.Error() != "file is not valid UTF-8 HTML" {
			t.Errorf("err = %v, want the UTF-8 error", err)
		}
	})

	t.Run("no title", func(t *testing.T) {
		path := write("empty.html", `<html><body></body></html>`)
		_, err := New(0).FetchTitle(context.Background(), "file://"+path)
		if err == nil || err.Error() != "no title found in file" {
			t.Errorf("err = %v, want %q", err, "no title found in file")
		}
	})
}
