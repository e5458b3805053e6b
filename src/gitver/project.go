// Package gitver reads repository coordinates from the local git checkout.
// `docsite init` uses them to prefill the deployment and URL fields.
package gitver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is assumed when HEAD is detached.
const DefaultBranch = "main"

// ErrNoOrigin is returned when the repository has no usable origin remote.
var ErrNoOrigin = errors.New("repository has no origin remote")

// ProjectMeta holds project-level metadata resolved from git.
type ProjectMeta struct {
	Host   string // "github.com"
	Owner  string // organization or user
	Name   string // repo name (last path component of git remote)
	URL    string // repo URL in https form
	Branch string // branch HEAD points at
}

// DetectProject opens the repository containing dir and resolves its
// coordinates from the origin remote.
func DetectProject(dir string) (*ProjectMeta, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return nil, ErrNoOrigin
		}
		return nil, fmt.Errorf("reading origin: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return nil, ErrNoOrigin
	}

	pm := &ProjectMeta{
		URL:    remoteToHTTPS(urls[0]),
		Name:   repoNameFromRemote(urls[0]),
		Branch: DefaultBranch,
	}
	pm.Host, pm.Owner = hostAndOwner(pm.URL)

	// Unresolved so an unborn branch (fresh init, no commits) still names itself.
	if head, err := repo.Reference(plumbing.HEAD, false); err == nil {
		switch {
		case head.Type() == plumbing.SymbolicReference && head.Target().IsBranch():
			pm.Branch = head.Target().Short()
		case head.Name().IsBranch():
			pm.Branch = head.Name().Short()
		}
	}

	return pm, nil
}

// PagesURL is the GitHub pages origin for the owner, or "" when the project
// is not hosted on github.com.
func (p *ProjectMeta) PagesURL() string {
	if p.Host != "github.com" || p.Owner == "" {
		return ""
	}
	return "https://" + strings.ToLower(p.Owner) + ".github.io"
}

// BaseURL is the path a project site is served under on GitHub pages.
func (p *ProjectMeta) BaseURL() string {
	return "/" + p.Name + "/"
}

// EditURL points at docsDir on the current branch in the web UI.
func (p *ProjectMeta) EditURL(docsDir string) string {
	docsDir = strings.Trim(docsDir, "/")
	if docsDir == "" {
		return p.URL + "/tree/" + p.Branch + "/"
	}
	return p.URL + "/tree/" + p.Branch + "/" + docsDir + "/"
}

// IssuesURL is the issue tracker of the project.
func (p *ProjectMeta) IssuesURL() string {
	return p.URL + "/issues"
}

// repoNameFromRemote extracts the repository name from a git remote URL.
// Handles SSH (git@host:org/repo.git) and HTTPS (https://host/org/repo.git).
func repoNameFromRemote(remote string) string {
	remote = strings.TrimSuffix(strings.TrimRight(remote, "/"), ".git")

	// SSH: git@host:org/repo
	if idx := strings.LastIndex(remote, ":"); idx != -1 && !strings.Contains(remote, "://") {
		remote = remote[idx+1:]
	}

	if idx := strings.LastIndex(remote, "/"); idx != -1 {
		return remote[idx+1:]
	}
	return remote
}

// remoteToHTTPS converts a git remote URL to HTTPS format.
// SSH remotes (git@host:org/repo.git, ssh://git@host/org/repo.git) become
// https://host/org/repo. HTTPS remotes pass through with .git and any
// credentials stripped.
func remoteToHTTPS(remote string) string {
	remote = strings.TrimSuffix(strings.TrimRight(remote, "/"), ".git")

	for _, scheme := range []string{"https://", "http://", "ssh://"} {
		if rest, ok := strings.CutPrefix(remote, scheme); ok {
			if at := strings.Index(rest, "@"); at != -1 && at < strings.Index(rest+"/", "/") {
				rest = rest[at+1:]
			}
			if scheme == "http://" {
				return scheme + rest
			}
			return "https://" + rest
		}
	}

	// SCP-like: git@host:org/repo → https://host/org/repo
	if idx := strings.Index(remote, "@"); idx != -1 {
		rest := remote[idx+1:]
		rest = strings.Replace(rest, ":", "/", 1)
		return "https://" + rest
	}

	return remote
}

// hostAndOwner splits https://host/owner/... into host and owner.
func hostAndOwner(httpsURL string) (host, owner string) {
	rest := httpsURL
	if i := strings.Index(rest, "://"); i != -1 {
		rest = rest[i+3:]
	}
	parts := strings.Split(rest, "/")
	host = parts[0]
	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}
	if len(parts) > 2 {
		owner = parts[1]
	}
	return host, owner
}
