package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var errUnsupportedScheme = errors.New("unsupported URL scheme")

// CheckURL reports whether raw is an absolute URL a COUNTER API can live at.
// The URL itself is stored as submitted; SUSHI servers are picky about paths
// and parameters.
func CheckURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp", "ftps":
	default:
		return errUnsupportedScheme
	}
	if u.Hostname() == "" {
		return errors.New("missing host")
	}

	return nil
}
