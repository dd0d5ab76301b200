// Package fetch retrieves a document's best-effort human title from web or
// local-file URLs.
package fetch

import (
	"fmt"
	"net/url"

	"github.com/yohoo/startpage/internal/domain"
)

// MaxURLLength bounds accepted URLs; anything longer is rejected before
// any I/O is attempted.
const MaxURLLength = 2048

// ValidateURL checks a raw URL before any network or disk access: it must
// be present, at most MaxURLLength characters and use an http, https or
// file scheme. http/https require a host; file requires a path. Every
// failure wraps ErrValidation with a descriptive message.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: missing url parameter", domain.ErrValidation)
	}
	if len(raw) > MaxURLLength {
		return fmt.Errorf("%w: URL too long (max %d characters)", domain.ErrValidation, MaxURLLength)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid URL format", domain.ErrValidation)
	}

	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return fmt.Errorf("%w: invalid URL format", domain.ErrValidation)
		}
	case "file":
		if parsed.Path == "" {
			return fmt.Errorf("%w: invalid file path", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: invalid scheme, use http, https or file", domain.ErrValidation)
	}

	return nil
}
