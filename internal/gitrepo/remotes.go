// Package gitrepo reads remote URLs out of a local repository's
// configuration so they can be parsed without touching the network.
package gitrepo

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"

	"github.com/quantmind-br/giturl-go/pkg/giturl"
)

// Remote is one configured remote URL and its parse outcome. A repository
// remote with several URLs yields one Remote per URL.
type Remote struct {
	Name string
	Raw  string
	URL  *giturl.GitURL
	Err  error
}

// ListRemotes opens the repository at or above path and parses every
// configured remote URL. skipFor maps a parsed host to the number of leading
// path segments to drop; nil means no skipping.
func ListRemotes(path string, skipFor func(host string) int) ([]Remote, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("read remotes: %w", err)
	}

	var out []Remote
	for _, remote := range remotes {
		cfg := remote.Config()
		for _, raw := range cfg.URLs {
			entry := Remote{Name: cfg.Name, Raw: raw}
			entry.URL, entry.Err = parseRemote(raw, skipFor)
			out = append(out, entry)
		}
	}

	// go-git hands remotes back in map order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// parseRemote parses once to learn the host, then reparses with the host's
// skip rule when one applies
func parseRemote(raw string, skipFor func(host string) int) (*giturl.GitURL, error) {
	parsed, err := giturl.Parse(raw)
	if err != nil || skipFor == nil || parsed.Host == nil {
		return parsed, err
	}
	if skip := skipFor(*parsed.Host); skip > 0 {
		return giturl.ParseWithSkips(raw, skip)
	}
	return parsed, nil
}
