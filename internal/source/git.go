package source

import (
	"errors"
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/cyberempirex/installguard/internal/logging"
)

// ReadGitRevision loads path as committed at rev in the local repository
// containing repoDir. Nothing is fetched; only local objects are read.
func ReadGitRevision(repoDir, rev, path string) (*Document, error) {
	display := rev + ":" + path
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &AccessError{Path: display, Err: fmt.Errorf("open repository %s: %w", repoDir, err)}
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &AccessError{Path: display, Err: fmt.Errorf("resolve %s: %w", rev, err)}
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, &AccessError{Path: display, Err: err}
	}
	rel, err := repoRelative(repo, repoDir, path)
	if err != nil {
		return nil, &AccessError{Path: display, Err: err}
	}
	f, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, &AccessError{Path: display, Err: ErrNotFound}
		}
		return nil, &AccessError{Path: display, Err: err}
	}
	content, err := f.Contents()
	if err != nil {
		return nil, &AccessError{Path: display, Err: err}
	}
	logging.L().Debugw("read script from git", "rev", rev, "commit", hash.String(), "path", rel)
	doc, err := FromBytes(KindGit, rel, []byte(content))
	if err != nil {
		return nil, err
	}
	doc.Rev = rev
	return doc, nil
}

// repoRelative turns path into a slash-separated path from the worktree root.
// Paths that are already relative are taken relative to repoDir.
func repoRelative(repo *git.Repository, repoDir, path string) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return filepath.ToSlash(filepath.Clean(path)), nil
	}
	root := wt.Filesystem.Root()
	abs := path
	if !filepath.IsAbs(abs) {
		base, err := filepath.Abs(repoDir)
		if err != nil {
			return "", err
		}
		abs = filepath.Join(base, path)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
