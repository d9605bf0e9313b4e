package giturl

import "strings"

// Scheme is a URL scheme recognized in git remote URLs.
// Unrecognized schemes are carried through verbatim (lowercased) so that
// arbitrary git-compatible forges still decompose through the generic rules.
type Scheme string

const (
	SchemeSSH    Scheme = "ssh"
	SchemeGit    Scheme = "git"
	SchemeGitSSH Scheme = "git+ssh"
	SchemeHTTP   Scheme = "http"
	SchemeHTTPS  Scheme = "https"
	SchemeFTP    Scheme = "ftp"
	SchemeFTPS   Scheme = "ftps"
	SchemeFile   Scheme = "file"
)

// knownSchemes is the closed set of schemes with dedicated handling
var knownSchemes = map[Scheme]bool{
	SchemeSSH:    true,
	SchemeGit:    true,
	SchemeGitSSH: true,
	SchemeHTTP:   true,
	SchemeHTTPS:  true,
	SchemeFTP:    true,
	SchemeFTPS:   true,
	SchemeFile:   true,
}

// ParseScheme normalizes a scheme string to a Scheme value
func ParseScheme(s string) Scheme {
	return Scheme(strings.ToLower(s))
}

// Known reports whether the scheme belongs to the supported closed set
func (s Scheme) Known() bool {
	return knownSchemes[s]
}

func (s Scheme) String() string {
	return string(s)
}
