package gitrepo

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/giturl-go/pkg/giturl"
)

func initRepo(t *testing.T, remotes map[string][]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for name, urls := range remotes {
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: name,
			URLs: urls,
		})
		require.NoError(t, err)
	}

	return dir
}

func TestListRemotes(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, map[string][]string{
		"origin":   {"git@github.com:owner/repo.git"},
		"upstream": {"https://gitlab.example.com/group/sub/project.git"},
	})

	remotes, err := ListRemotes(dir, nil)
	require.NoError(t, err)
	require.Len(t, remotes, 2)

	// Sorted by remote name
	assert.Equal(t, "origin", remotes[0].Name)
	require.NoError(t, remotes[0].Err)
	assert.Equal(t, "owner/repo", remotes[0].URL.Fullname)
	assert.Equal(t, giturl.SchemeSSH, remotes[0].URL.Scheme)

	assert.Equal(t, "upstream", remotes[1].Name)
	require.NoError(t, remotes[1].Err)
	assert.Equal(t, "group/sub/project", remotes[1].URL.Fullname)
}

func TestListRemotesSkipRule(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, map[string][]string{
		"origin": {"git@ssh.dev.azure.com:v3/Company/Project/Repo"},
	})

	skipFor := func(host string) int {
		if host == "ssh.dev.azure.com" {
			return 1
		}
		return 0
	}

	remotes, err := ListRemotes(dir, skipFor)
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	require.NoError(t, remotes[0].Err)
	assert.Equal(t, "Company/Project/Repo", remotes[0].URL.Fullname)
}

func TestListRemotesBadURL(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, map[string][]string{
		"broken": {"host.tld:"},
	})

	remotes, err := ListRemotes(dir, nil)
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.ErrorIs(t, remotes[0].Err, giturl.ErrInvalidShorthand)
	assert.Nil(t, remotes[0].URL)
}

func TestListRemotesNotARepo(t *testing.T) {
	t.Parallel()

	_, err := ListRemotes(t.TempDir(), nil)
	assert.Error(t, err)
}
