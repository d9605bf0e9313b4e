// Package giturl parses git remote URLs into their structural components.
//
// It accepts the URL shapes used by common git hosting providers (GitHub,
// Bitbucket, Azure DevOps, GitLab and other forges): explicit schemes,
// SCP-style ssh shorthand, nested subgroup paths and embedded credentials.
// Parsing is a pure function; the same input always produces the same
// record or the same error.
package giturl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GitURL is the normalized decomposition of a git remote URL.
// Optional fields are nil when the component was absent from the input.
type GitURL struct {
	// Host is the network host, absent for local filesystem paths
	Host *string `json:"host,omitempty"`
	// Name is the repository name with any .git suffix stripped
	Name string `json:"name"`
	// Owner is the first path segment, when the path carries one
	Owner *string `json:"owner,omitempty"`
	// Subgroups holds the intermediate path segments between owner and
	// name, in order. Empty (never nil) when there is no nesting.
	Subgroups []string `json:"subgroups"`
	// Organization mirrors Owner for hosts whose convention treats the
	// first segment as an organization. Providers with atypical layouts
	// (Azure DevOps) need caller-side postprocessing; see ParseWithSkips.
	Organization *string `json:"organization,omitempty"`
	// Fullname is owner, subgroups and name joined by "/"
	Fullname string `json:"fullname"`
	// Scheme is the URL scheme after normalization
	Scheme Scheme `json:"scheme"`
	// AuthUser is the userinfo username, if present
	AuthUser *string `json:"auth_user,omitempty"`
	// AuthToken is the userinfo password or token, if present
	AuthToken *string `json:"auth_token,omitempty"`
	// Port is the explicit port, if present
	Port *uint16 `json:"port,omitempty"`
	// Path is the path component as it appeared after the authority
	Path *string `json:"path,omitempty"`
	// GitSuffix reports whether the source path ended in .git
	GitSuffix bool `json:"git_suffix"`
	// SchemePrefix reports whether the input carried an explicit proto://
	SchemePrefix bool `json:"scheme_prefix"`
}

// Parse normalizes and parses a git remote URL
func Parse(raw string) (*GitURL, error) {
	return ParseWithSkips(raw, 0)
}

// ParseWithSkips parses a git remote URL, dropping the first skip path
// segments before decomposition. Hosts that prefix their paths with routing
// segments (Azure DevOps ssh URLs start with "v3/") need skip to recover the
// owner/name layout.
func ParseWithSkips(raw string, skip int) (*GitURL, error) {
	normalized, schemePrefix, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(normalized)
	if err != nil {
		if strings.Contains(err.Error(), "invalid port") {
			return nil, newParseError(raw, ErrInvalidPort)
		}
		return nil, newParseError(raw, fmt.Errorf("%w: %v", ErrInvalidURL, err))
	}

	scheme := ParseScheme(u.Scheme)

	port, err := parsePort(raw, u.Port())
	if err != nil {
		return nil, err
	}

	if scheme == SchemeFile {
		return parseFilePath(raw, u, schemePrefix)
	}

	if u.Hostname() == "" {
		return nil, newParseError(raw, fmt.Errorf("%w: missing host", ErrInvalidURL))
	}
	host := strings.ToLower(u.Hostname())

	segments := splitSegments(u.Path)
	if skip > 0 {
		if skip >= len(segments) {
			return nil, newParseError(raw, ErrMissingRepositoryName)
		}
		segments = segments[skip:]
	}
	if len(segments) == 0 {
		return nil, newParseError(raw, ErrMissingRepositoryName)
	}

	last := segments[len(segments)-1]
	gitSuffix := strings.HasSuffix(last, ".git")
	name := strings.TrimSuffix(last, ".git")
	if name == "" {
		return nil, newParseError(raw, ErrMissingRepositoryName)
	}

	g := &GitURL{
		Host:         &host,
		Name:         name,
		Subgroups:    []string{},
		Scheme:       scheme,
		Port:         port,
		GitSuffix:    gitSuffix,
		SchemePrefix: schemePrefix,
	}

	switch k := len(segments); {
	case k == 1:
		// Single-segment paths name the repository only
	case k == 2:
		g.Owner = &segments[0]
	default:
		g.Owner = &segments[0]
		g.Subgroups = append(g.Subgroups, segments[1:k-1]...)
		// Organization is a convention hook: it mirrors the owner when
		// the path nests, nothing more. Providers with their own layout
		// need caller-side handling.
		g.Organization = g.Owner
	}
	g.Fullname = joinFullname(g.Owner, g.Subgroups, g.Name)

	recorded := u.Path
	if scheme == SchemeSSH {
		// Normalized ssh URLs always gain a leading slash; drop it so
		// the recorded path matches what the remote was addressed with
		recorded = strings.TrimPrefix(recorded, "/")
	}
	g.Path = &recorded

	if user := u.User.Username(); user != "" {
		g.AuthUser = &user
	}
	if token, ok := u.User.Password(); ok && token != "" {
		g.AuthToken = &token
	}

	return g, nil
}

// parseFilePath handles file:// URLs. No hosting metadata is assumed from a
// filesystem path: only the repository name is derived.
func parseFilePath(raw string, u *url.URL, schemePrefix bool) (*GitURL, error) {
	// Relative paths normalize with their first component in the host
	// position ("file://../repo.git"); fold it back into the path
	full := u.Host + u.Path

	segments := splitSegments(full)
	if len(segments) == 0 {
		return nil, newParseError(raw, ErrMissingRepositoryName)
	}
	last := segments[len(segments)-1]
	gitSuffix := strings.HasSuffix(last, ".git")
	name := strings.TrimSuffix(last, ".git")
	if name == "" {
		return nil, newParseError(raw, ErrMissingRepositoryName)
	}

	return &GitURL{
		Name:         name,
		Subgroups:    []string{},
		Fullname:     name,
		Scheme:       SchemeFile,
		Path:         &full,
		GitSuffix:    gitSuffix,
		SchemePrefix: schemePrefix,
	}, nil
}

// parsePort validates an explicit port as a base-10 16-bit unsigned integer
func parsePort(raw, port string) (*uint16, error) {
	if port == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, newParseError(raw, ErrInvalidPort)
	}
	p := uint16(n)
	return &p, nil
}

// splitSegments splits a URL path into its non-empty segments
func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// joinFullname joins owner, subgroups and name with "/", omitting the owner
// when absent
func joinFullname(owner *string, subgroups []string, name string) string {
	parts := make([]string, 0, len(subgroups)+2)
	if owner != nil {
		parts = append(parts, *owner)
	}
	parts = append(parts, subgroups...)
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

// TrimAuth returns a copy with AuthUser and AuthToken cleared, for printing
// a URL without leaking embedded credentials
func (g *GitURL) TrimAuth() *GitURL {
	trimmed := *g
	trimmed.AuthUser = nil
	trimmed.AuthToken = nil
	return &trimmed
}

// String reassembles the printable URL from its components. Shorthand inputs
// round-trip to shorthand, explicit schemes to explicit URLs.
func (g *GitURL) String() string {
	var b strings.Builder

	if g.SchemePrefix {
		b.WriteString(string(g.Scheme))
		b.WriteString("://")
	}

	switch g.Scheme {
	case SchemeSSH, SchemeGit, SchemeGitSSH:
		if g.AuthUser != nil {
			b.WriteString(*g.AuthUser)
			b.WriteString("@")
		}
	case SchemeHTTP, SchemeHTTPS:
		switch {
		case g.AuthUser != nil && g.AuthToken != nil:
			b.WriteString(*g.AuthUser)
			b.WriteString(":")
			b.WriteString(*g.AuthToken)
			b.WriteString("@")
		case g.AuthUser != nil:
			b.WriteString(*g.AuthUser)
			b.WriteString("@")
		case g.AuthToken != nil:
			b.WriteString(*g.AuthToken)
			b.WriteString("@")
		}
	}

	if g.Host != nil {
		b.WriteString(*g.Host)
	}
	if g.Port != nil {
		fmt.Fprintf(&b, ":%d", *g.Port)
	}

	path := ""
	if g.Path != nil {
		path = *g.Path
	}
	if g.Scheme == SchemeSSH && !g.SchemePrefix && g.Port == nil {
		b.WriteString(":")
		b.WriteString(path)
	} else if g.Scheme == SchemeSSH {
		b.WriteString("/")
		b.WriteString(path)
	} else {
		b.WriteString(path)
	}

	return b.String()
}
