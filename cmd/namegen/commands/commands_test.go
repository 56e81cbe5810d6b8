package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/concave-dev/namegen/cmd/namegen/config"
	"github.com/concave-dev/namegen/internal/logging"
	"github.com/concave-dev/namegen/internal/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func corpusDir(t *testing.T, lists map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range lists {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestRootRender(t *testing.T) {
	dir := corpusDir(t, map[string]string{
		names.CategoryNoun:      "wolf\n",
		names.CategoryAdjective: "swift\n",
		names.CategoryColor:     "red\n",
	})

	out, err := execute(t, "--corpus", dir, "Hello, %N the %A %C!")
	require.NoError(t, err)
	assert.Equal(t, "Hello, wolf the swift red!\n", out)

	out, err = execute(t, "--corpus", dir, "%-5N|%6C")
	require.NoError(t, err)
	assert.Equal(t, "wolf.|...red\n", out)
}

func TestRootRenderSeeded(t *testing.T) {
	dir := corpusDir(t, map[string]string{
		names.CategoryNoun: "ant\nbee\ncat\ndog\neel\nfox\ngnu\n",
	})

	first, err := execute(t, "--corpus", dir, "--seed", "42", "%N-%6d")
	require.NoError(t, err)
	second, err := execute(t, "--corpus", dir, "--seed", "42", "%N-%6d")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, regexp.MustCompile(`^[a-z]{3}-[0-9]{6}\n$`), first)
}

func TestRootConfigFileFormat(t *testing.T) {
	dir := corpusDir(t, map[string]string{names.CategoryColor: "teal\n"})
	cfgPath := filepath.Join(t.TempDir(), "namegen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: \"%C-%%\"\ncorpus: "+dir+"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "teal-%\n", out)
}

func TestRootErrors(t *testing.T) {
	dir := corpusDir(t, nil)

	tests := []struct {
		name    string
		args    []string
		partial string
		errPart string
	}{
		{name: "no format", args: []string{"--corpus", dir}, errPart: "no format given"},
		{name: "unknown specifier", args: []string{"--corpus", dir, "ab%Q"}, partial: "ab", errPart: "unknown specifier '%Q'"},
		{name: "trailing symbol", args: []string{"--corpus", dir, "x@"}, partial: "x", errPart: "trailing symbol '@'"},
		{name: "missing list", args: []string{"--corpus", dir, "%N"}, errPart: filepath.Join(dir, "noun")},
		{name: "bad log level", args: []string{"--corpus", dir, "--log-level", "LOUD", "x"}, errPart: "invalid log level"},
		{name: "blank corpus", args: []string{"--corpus", " ", "x"}, errPart: "corpus directory cannot be empty"},
		{name: "too many args", args: []string{"--corpus", dir, "a", "b"}, errPart: "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
			assert.Equal(t, tt.partial, out)
		})
	}
}

func TestRootCheck(t *testing.T) {
	// No corpus needed: --check never loads word lists.
	dir := corpusDir(t, nil)

	out, err := execute(t, "--corpus", dir, "--check", "%A-%N-@Y")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = execute(t, "--corpus", dir, "--check", "%A-%k")
	var unknown *names.UnknownSpecifierError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 'k', unknown.Specifier)
}

func TestCorpusCommands(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corpus")

	out, err := execute(t, "--corpus", dir, "corpus", "path")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", out)

	_, err = execute(t, "--corpus", dir, "corpus", "init")
	require.NoError(t, err)
	for _, category := range names.Categories {
		assert.FileExists(t, filepath.Join(dir, category))
	}

	out, err = execute(t, "--corpus", dir, "%A-%N-%C")
	require.NoError(t, err)
	parts := strings.Split(strings.TrimSuffix(out, "\n"), "-")
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}

	// A second init without --force leaves edits alone.
	noun := filepath.Join(dir, names.CategoryNoun)
	require.NoError(t, os.WriteFile(noun, []byte("ox\n"), 0o644))
	_, err = execute(t, "--corpus", dir, "corpus", "init")
	require.NoError(t, err)
	data, err := os.ReadFile(noun)
	require.NoError(t, err)
	assert.Equal(t, "ox\n", string(data))

	_, err = execute(t, "--corpus", dir, "corpus", "init", "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(noun)
	require.NoError(t, err)
	assert.NotEqual(t, "ox\n", string(data))
}

func TestCorpusInitLogsProgress(t *testing.T) {
	var logs bytes.Buffer
	logging.SetOutput(&logs)
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.SetLevel(config.DefaultLogLevel)
	})

	dir := filepath.Join(t.TempDir(), "corpus")
	_, err := execute(t, "--corpus", dir, "--log-level", "INFO", "corpus", "init")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Writing starter word lists to "+dir)
}
