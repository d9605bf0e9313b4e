package giturl

import (
	"strings"
)

// Normalize rewrites a raw git remote reference into a form that net/url can
// parse. It returns the normalized URL and whether the original input carried
// an explicit scheme prefix.
//
// Three input shapes are handled:
//   - explicit scheme ("proto://..."), passed through unchanged
//   - SCP-style shorthand ("[user@]host:path"), rewritten to "ssh://[user@]host/path"
//   - bare filesystem paths, rewritten to "file://..." URLs
func Normalize(raw string) (string, bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false, newParseError(raw, ErrEmptyInput)
	}
	if strings.ContainsRune(s, 0) {
		return "", false, newParseError(raw, ErrInvalidURL)
	}

	// Trailing slashes carry no meaning for a repository reference
	s = trimTrailingSlashes(s)

	if strings.Contains(s, "://") {
		return s, true, nil
	}

	// Legacy "git:host/path" notation
	if strings.HasPrefix(s, "git:") {
		return "git://" + strings.TrimPrefix(s, "git:"), true, nil
	}

	if strings.Contains(s, ":") {
		normalized, err := normalizeShorthand(raw, s)
		if err != nil {
			return "", false, err
		}
		return normalized, false, nil
	}

	return normalizeFilePath(s), false, nil
}

// normalizeShorthand rewrites "[user@]host:path" or "[user@]host:port:path"
// into an ssh:// URL. raw is the original input, used for error reporting.
func normalizeShorthand(raw, s string) (string, error) {
	var userinfo string
	rest := s
	if at := strings.Index(s, "@"); at >= 0 {
		userinfo, rest = s[:at], s[at+1:]
		if user, _, found := strings.Cut(userinfo, ":"); found && user == "" {
			// A token with no user is not a valid ssh login
			return "", newParseError(raw, ErrInvalidShorthand)
		}
	}

	parts := strings.Split(rest, ":")
	var host, port, path string
	switch len(parts) {
	case 1:
		// Colon lived in the userinfo only; nothing to rewrite
		return "", newParseError(raw, ErrInvalidShorthand)
	case 2:
		host, path = parts[0], parts[1]
	case 3:
		host, port, path = parts[0], parts[1], parts[2]
	default:
		return "", newParseError(raw, ErrInvalidShorthand)
	}

	if host == "" || !plausibleShorthandPath(path) {
		return "", newParseError(raw, ErrInvalidShorthand)
	}

	var b strings.Builder
	b.WriteString("ssh://")
	if userinfo != "" {
		b.WriteString(userinfo)
		b.WriteString("@")
	}
	b.WriteString(host)
	if port != "" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString("/")
	b.WriteString(path)
	return b.String(), nil
}

// plausibleShorthandPath rejects colon suffixes that cannot be repository
// paths: empty text, a bare port number, or a Windows drive remainder.
func plausibleShorthandPath(path string) bool {
	if path == "" || strings.HasPrefix(path, "\\") {
		return false
	}
	if !strings.Contains(path, "/") && isAllDigits(path) {
		// "host:22" is a host:port spec, not a repository reference
		return false
	}
	return true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// normalizeFilePath turns a bare filesystem path into a file:// URL.
// Windows separators are folded to forward slashes first.
func normalizeFilePath(path string) string {
	return "file://" + strings.ReplaceAll(path, "\\", "/")
}

// trimTrailingSlashes removes trailing forward slashes, keeping at least one
// character so absolute root paths stay parseable.
func trimTrailingSlashes(s string) string {
	trimmed := strings.TrimRight(s, "/")
	if trimmed == "" {
		return s[:1]
	}
	return trimmed
}
