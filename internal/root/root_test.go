package root

import (
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
)

const configName = "podkit.toml"

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
	}
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte("[render]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFindConfigInStart(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir)

	got, found, err := FindConfig(dir, configName)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("expected %s, got %s (found=%v)", want, got, found)
	}
}

func TestFindConfigInParent(t *testing.T) {
	repo := t.TempDir()
	sub := filepath.Join(repo, "ios", "nested")
	mkdirs(t, filepath.Join(repo, ".git"), sub)
	want := writeConfig(t, repo)

	got, found, err := FindConfig(sub, configName)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("expected %s, got %s (found=%v)", want, got, found)
	}
}

func TestFindConfigStopsAtRepoRoot(t *testing.T) {
	outer := t.TempDir()
	writeConfig(t, outer)
	repo := filepath.Join(outer, "repo")
	sub := filepath.Join(repo, "ios")
	mkdirs(t, filepath.Join(repo, ".git"), sub)

	got, found, err := FindConfig(sub, configName)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if found {
		t.Fatalf("expected no config inside the repo, got %s", got)
	}
}

func TestFindConfigStopsAtGitFile(t *testing.T) {
	outer := t.TempDir()
	writeConfig(t, outer)
	repo := filepath.Join(outer, "worktree")
	mkdirs(t, repo)
	if err := os.WriteFile(filepath.Join(repo, ".git"), []byte("gitdir: ../.git/worktrees/x\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	_, found, err := FindConfig(repo, configName)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if found {
		t.Fatal("expected worktree root to bound the search")
	}
}

func TestFindConfigRequiresStart(t *testing.T) {
	if _, _, err := FindConfig("", configName); err == nil {
		t.Fatal("expected FindConfig to reject empty start")
	}
}

func TestFindConfigRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, filepath.Join(dir, configName))

	if _, _, err := FindConfig(dir, configName); err == nil {
		t.Fatal("expected error when the config path is a directory")
	}
}

func TestFindConfigGitSpecialFileErrors(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mkfifo is not supported on windows")
	}

	dir := t.TempDir()
	if err := syscall.Mkfifo(filepath.Join(dir, ".git"), 0o644); err != nil {
		t.Fatalf("mkfifo .git: %v", err)
	}

	if _, _, err := FindConfig(dir, configName); err == nil {
		t.Fatal("expected error when .git is neither directory nor regular file")
	}
}
