// Package target validates and canonicalizes user-supplied audit targets.
// Validation is pure: the caller decides how to surface failures and must not
// start any work on error.
package target

import (
	"errors"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"

	"auditor/pkg/serrors"
)

// Sentinel causes carried inside the BAD_REQUEST semantic error returned by
// Normalize. Callers branch with errors.Is.
var (
	// ErrEmptyInput is returned when the trimmed target has zero length.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformedURL is returned when the target cannot be parsed as an
	// absolute http(s) URL.
	ErrMalformedURL = errors.New("malformed url")
)

// Normalize returns the canonical form of a user-supplied target URL.
//
// Policy (stated for testers):
//   - The input is trimmed first; an empty result fails with ErrEmptyInput.
//   - A bare domain ("example.com") defaults to the https scheme.
//   - Only http and https schemes are accepted.
//   - Scheme and host are lower-cased, default ports dropped, dot-segments
//     resolved, trailing slashes removed (the root path is omitted entirely,
//     so "example.com" normalizes to exactly "https://example.com"), query
//     parameters sorted, fragment removed.
//
// The strict canonical form keeps result caching and job de-duplication
// stable across cosmetic variants of the same URL.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrEmptyInput, "target URL is required")
	}

	// default scheme for bare domains before parsing, otherwise url.Parse
	// treats "example.com/about" as a relative path
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrMalformedURL, "could not parse target URL")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrMalformedURL, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrMalformedURL, "target URL has no host")
	}

	// clean path (resolves dot-segments, collapses duplicate slashes); the
	// root path is dropped so bare domains stay bare
	switch u.Path {
	case "", "/":
		u.Path = ""
	default:
		cleaned := path.Clean(u.Path)
		if !strings.HasPrefix(cleaned, "/") {
			cleaned = "/" + cleaned
		}
		u.Path = strings.TrimRight(cleaned, "/")
	}

	// lowercase host and drop default ports
	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, splitErr := net.SplitHostPort(host); splitErr == nil {
		host, port = ph, pp
	} // else: host without explicit port, or IPv6 without port
	switch {
	case port == "",
		u.Scheme == "http" && port == "80",
		u.Scheme == "https" && port == "443":
		u.Host = host
	default:
		u.Host = net.JoinHostPort(host, port)
	}
	if strings.ContainsAny(host, " \t") {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrMalformedURL, "target host contains whitespace")
	}

	// sort query params for a stable ordering
	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""

	return u.String(), nil
}
