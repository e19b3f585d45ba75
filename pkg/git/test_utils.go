package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository on branch main with one commit.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	RunGit(t, dir, "init")
	RunGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	RunGit(t, dir, "config", "user.name", "Test User")
	RunGit(t, dir, "config", "user.email", "test@example.com")
	RunGit(t, dir, "config", "commit.gpgsign", "false")
	RunGit(t, dir, "config", "tag.gpgsign", "false")
	CommitFile(t, dir, "README.md", "# Test Repository\n", "Initial commit")

	return dir
}

// RunGit runs a git command in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v (output: %s)", strings.Join(args, " "), err, string(output))
	}
	return string(output)
}

// CommitFile writes content to name and commits it with message.
func CommitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	RunGit(t, dir, "add", name)
	RunGit(t, dir, "commit", "-m", message)
}

// MergePullRequest creates a branch with one commit and merges it into the
// current branch the way a forge does, with body as the merge commit body.
func MergePullRequest(t *testing.T, dir string, number int, branch, body string) {
	t.Helper()
	current := strings.TrimSpace(RunGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))

	RunGit(t, dir, "checkout", "-b", branch)
	CommitFile(t, dir, branch+".txt", branch+"\n", "Work on "+branch)
	RunGit(t, dir, "checkout", current)

	subject := "Merge pull request #" + strconv.Itoa(number) + " from user/" + branch
	RunGit(t, dir, "merge", "--no-ff", branch, "-m", subject+"\n\n"+body)
}

