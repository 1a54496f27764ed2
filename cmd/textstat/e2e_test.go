package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	// go test runs from the package directory (cmd/textstat/),
	// so "go build ." builds the main package in this directory.
	tmp, err := os.MkdirTemp("", "textstat-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "textstat")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the textstat binary with the given args and optional stdin.
// It returns stdout, stderr, and the exit code.
func runBinary(t *testing.T, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}

// runBinaryInDir runs the textstat binary with the given args in the given directory.
func runBinaryInDir(t *testing.T, dir, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}

// writeFixture creates a file with the given content in the given directory.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

const fixtureText = "The cat sat on the mat. The dog ran to the park. A bird can sing.\n"

// --- Top-level behavior tests ---

func TestE2E_NoArgs_PrintsUsage_ExitsZero(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("expected usage text in stderr, got: %s", stderr)
	}
	if !strings.Contains(stderr, "score") {
		t.Errorf("expected 'score' subcommand in usage, got: %s", stderr)
	}
}

func TestE2E_Help_PrintsUsage_ExitsZero(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "", "--help")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("expected usage text in stderr, got: %s", stderr)
	}
}

func TestE2E_UnknownCommand_ExitsTwo(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "", "frobnicate")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Errorf("expected unknown command message, got: %s", stderr)
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "version")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "textstat") {
		t.Errorf("expected version output, got: %s", stdout)
	}
}

// --- score tests ---

func TestE2E_Score_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "fixture.txt", fixtureText)

	stdout, stderr, exitCode := runBinary(t, "", "score", path)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stdout, "FLESCH-READING-EASE") {
		t.Errorf("expected default metric header, got: %s", stdout)
	}
	if !strings.Contains(stdout, "116.86") {
		t.Errorf("expected flesch-reading-ease value, got: %s", stdout)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("expected file path in output, got: %s", stdout)
	}
}

func TestE2E_Score_Stdin(t *testing.T) {
	stdout, stderr, exitCode := runBinary(t, fixtureText, "score")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stdout, "<stdin>") {
		t.Errorf("expected stdin marker in output, got: %s", stdout)
	}
}

func TestE2E_Score_SelectedMetrics(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "fixture.txt", fixtureText)

	stdout, stderr, exitCode := runBinary(t, "", "score", "--metrics", "words,sentences", path)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stdout, "WORDS") || !strings.Contains(stdout, "SENTENCES") {
		t.Errorf("expected selected metric headers, got: %s", stdout)
	}
	if strings.Contains(stdout, "FLESCH") {
		t.Errorf("default metrics should not appear, got: %s", stdout)
	}
}

func TestE2E_Score_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "fixture.txt", fixtureText)

	stdout, stderr, exitCode := runBinary(t, "", "score", "--format", "json", "--metrics", "words", path)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(stdout), &items); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["words"] != float64(16) {
		t.Errorf("expected 16 words, got %v", items[0]["words"])
	}
}

func TestE2E_Score_UnknownMetric_ExitsTwo(t *testing.T) {
	_, stderr, exitCode := runBinary(t, fixtureText, "score", "--metrics", "bogus")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "unknown metric") {
		t.Errorf("expected unknown metric message, got: %s", stderr)
	}
}

func TestE2E_Score_ConfigLanguageOverride(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, ".textstat.yml", "language: en_uk\n")
	writeFixture(t, dir, "fixture.txt", fixtureText)

	_, stderr, exitCode := runBinaryInDir(t, dir, "", "score", "-v", "fixture.txt")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stderr, ".textstat.yml") {
		t.Errorf("expected config path in verbose output, got: %s", stderr)
	}
}

// --- rank tests ---

func TestE2E_Rank_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "short.txt", "One two three.\n")
	writeFixture(t, dir, "long.txt", "One two three four five six seven eight.\n")

	stdout, stderr, exitCode := runBinaryInDir(t, dir, "",
		"rank", "--metrics", "words", "--by", "words", ".")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}

	longIdx := strings.Index(stdout, "long.txt")
	shortIdx := strings.Index(stdout, "short.txt")
	if longIdx < 0 || shortIdx < 0 {
		t.Fatalf("expected both files in output, got: %s", stdout)
	}
	// Default order for words is descending.
	if longIdx > shortIdx {
		t.Errorf("expected long.txt before short.txt, got: %s", stdout)
	}
}

func TestE2E_Rank_Top(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.txt", "One two.\n")
	writeFixture(t, dir, "b.txt", "One two three.\n")
	writeFixture(t, dir, "c.txt", "One two three four.\n")

	stdout, stderr, exitCode := runBinaryInDir(t, dir, "",
		"rank", "--metrics", "words", "--by", "words", "--top", "1", ".")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", exitCode, stderr)
	}
	if !strings.Contains(stdout, "c.txt") {
		t.Errorf("expected top file c.txt, got: %s", stdout)
	}
	if strings.Contains(stdout, "a.txt") {
		t.Errorf("expected a.txt to be cut, got: %s", stdout)
	}
}

func TestE2E_Rank_ByNotInMetrics_ExitsTwo(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.txt", "One two.\n")

	_, stderr, exitCode := runBinaryInDir(t, dir, "",
		"rank", "--metrics", "words", "--by", "lix", ".")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "--by") {
		t.Errorf("expected --by error message, got: %s", stderr)
	}
}

// --- list and help tests ---

func TestE2E_List(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "list")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "RD007") {
		t.Errorf("expected RD007 in list output, got: %s", stdout)
	}
	if !strings.Contains(stdout, "flesch-reading-ease") {
		t.Errorf("expected flesch-reading-ease in list output, got: %s", stdout)
	}
}

func TestE2E_List_JSON(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "list", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	var items []map[string]any
	if err := json.Unmarshal([]byte(stdout), &items); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if len(items) != 19 {
		t.Errorf("expected 19 metrics, got %d", len(items))
	}
}

func TestE2E_HelpMetric(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "help", "metric", "flesch-reading-ease")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "flesch-reading-ease") {
		t.Errorf("expected metric doc, got: %s", stdout)
	}
}

func TestE2E_HelpMetric_Unknown_ExitsTwo(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "", "help", "metric", "RD999")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "unknown metric") {
		t.Errorf("expected unknown metric message, got: %s", stderr)
	}
}
