package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
	"unicode/utf8"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/utils"
)

const (
	// DefaultTimeout bounds a single outbound fetch end to end.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRedirects caps the redirect chain.
	DefaultMaxRedirects = 5

	// DefaultUserAgent identifies the proxy on outbound requests.
	DefaultUserAgent = "YohooProxy/1.0"
)

var errTooManyRedirects = errors.New("too many redirects")

// Fetcher retrieves page titles. Stateless across calls: each fetch is an
// independent operation bounded by the configured timeout, with no
// connection pool or session kept between requests.
type Fetcher struct {
	Timeout      time.Duration
	MaxRedirects int
	UserAgent    string

	client *http.Client
}

// New builds a Fetcher with the given timeout (DefaultTimeout if zero).
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	f := &Fetcher{
		Timeout:      timeout,
		MaxRedirects: DefaultMaxRedirects,
		UserAgent:    DefaultUserAgent,
	}
	f.client = &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.MaxRedirects {
				return errTooManyRedirects
			}
			return nil
		},
	}
	return f
}

// FetchTitle retrieves the document behind a validated URL and extracts
// its title. Failures come back as distinct human-readable errors; the
// caller decides how to surface them.
func (f *Fetcher) FetchTitle(ctx context.Context, raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL format", domain.ErrValidation)
	}

	if parsed.Scheme == "file" {
		return f.fetchFile(parsed.Path)
	}
	return f.fetchHTTP(ctx, raw)
}

func (f *Fetcher) fetchFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return "", errors.New("file not found")
		case os.IsPermission(err):
			return "", errors.New("permission denied to read file")
		default:
			return "", fmt.Errorf("file error: %w", err)
		}
	}

	if !utf8.Valid(data) {
		return "", errors.New("file is not valid UTF-8 HTML")
	}

	title := ExtractTitle(bytes.NewReader(data))
	if title == "" {
		return "", errors.New("no title found in file")
	}
	return title, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, raw string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", f.classifyTransportError(err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: HTTP %d", domain.ErrNetwork, resp.StatusCode)
	}

	title := ExtractTitle(resp.Body)
	if title == "" {
		return "", errors.New("no title found in page")
	}
	return title, nil
}

func (f *Fetcher) classifyTransportError(err error) error {
	if errors.Is(err, errTooManyRedirects) {
		return fmt.Errorf("%w: too many redirects", domain.ErrNetwork)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: timeout after %s", domain.ErrNetwork, f.Timeout)
	}

	return fmt.Errorf("%w: connection failed: %s", domain.ErrNetwork, err)
}
