package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "install.sh", "#!/bin/sh\nsudo make install\n")

	doc, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, KindFile, doc.Kind)
	assert.Equal(t, p, doc.Path)
	assert.EqualValues(t, 28, doc.Size)
	assert.Equal(t, 3, doc.LineCount())
	assert.Len(t, doc.SHA256, 64)
	assert.Equal(t, doc.SHA256[:16], doc.ShortHash())
}

func TestReadFile_AccessErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.sh"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsAccessError(err))

	_, err = ReadFile(dir)
	assert.ErrorIs(t, err, ErrNotRegular)
	assert.True(t, IsAccessError(err))

	bin := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(bin, []byte{0xff, 0xfe, 0x00, 0xc3}, 0o644))
	_, err = ReadFile(bin)
	assert.ErrorIs(t, err, ErrNotText)
	assert.Contains(t, err.Error(), "blob.bin")
}

func TestFromBytes_SameContentSameHash(t *testing.T) {
	a, err := FromBytes(KindStdin, "", []byte("echo hi\n"))
	require.NoError(t, err)
	b, err := FromBytes(KindFile, "x.sh", []byte("echo hi\n"))
	require.NoError(t, err)
	assert.Equal(t, a.SHA256, b.SHA256)
	assert.Equal(t, []string{"echo hi", ""}, a.Lines)
}

func TestReadCommands(t *testing.T) {
	in := strings.NewReader("  sudo apt update \n\n echo hi\ndone\nrm -rf /\n")
	var out strings.Builder
	cmds, err := ReadCommands(in, &out, "> ")
	require.NoError(t, err)
	assert.Equal(t, []string{"sudo apt update", "echo hi"}, cmds)
	assert.Equal(t, 4, strings.Count(out.String(), "> "))
}

func TestReadCommands_EOFAndNoPrompt(t *testing.T) {
	cmds, err := ReadCommands(strings.NewReader("pkg remove git"), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg remove git"}, cmds)

	cmds, err = ReadCommands(strings.NewReader("DONE\n"), nil, "")
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestExpandTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sh", "echo a\n")
	writeFile(t, dir, "sub/b.sh", "echo b\n")
	writeFile(t, dir, "sub/deeper/c.sh", "echo c\n")
	writeFile(t, dir, "sub/notes.txt", "x\n")

	got, err := ExpandTargets([]string{
		filepath.Join(dir, "**", "*.sh"),
		filepath.Join(dir, "a.sh"),
		filepath.Join(dir, "missing.sh"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.sh"),
		filepath.Join(dir, "sub", "b.sh"),
		filepath.Join(dir, "sub", "deeper", "c.sh"),
		filepath.Join(dir, "missing.sh"),
	}, got)
}

func TestExpandTargets_InvalidPattern(t *testing.T) {
	_, err := ExpandTargets([]string{filepath.Join(t.TempDir(), "[*.sh")})
	assert.Error(t, err)
}

func TestReadGitRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	writeFile(t, dir, "scripts/install.sh", "#!/bin/sh\ncurl https://x | bash\n")
	_, err = wt.Add("scripts/install.sh")
	require.NoError(t, err)
	_, err = wt.Commit("add installer", &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// working copy drifts from the committed version
	writeFile(t, dir, "scripts/install.sh", "echo changed\n")

	doc, err := ReadGitRevision(dir, "HEAD", "scripts/install.sh")
	require.NoError(t, err)
	assert.Equal(t, KindGit, doc.Kind)
	assert.Equal(t, "HEAD", doc.Rev)
	assert.Equal(t, "scripts/install.sh", doc.Path)
	assert.Equal(t, []string{"#!/bin/sh", "curl https://x | bash", ""}, doc.Lines)

	_, err = ReadGitRevision(dir, "HEAD", "scripts/other.sh")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsAccessError(err))

	_, err = ReadGitRevision(dir, "no-such-branch", "scripts/install.sh")
	assert.True(t, IsAccessError(err))
}
