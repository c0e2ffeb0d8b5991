package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/mdgen/internal/assemble"
	"github.com/agentflare-ai/mdgen/internal/scan"
	"github.com/agentflare-ai/mdgen/internal/testutil"
)

const project = `
-- composer.json --
{
    "name": "acme/widget",
    "description": "Widgets for everyone",
    "license": "MIT"
}
-- src/widget.php --
<?php
/**
 * Internal notes.
 * @md
 * Builds widgets.
 * @md
 */
class Widget {}
-- src/helper.js --
// nothing to see here
-- vendor/lib.php --
<?php /** @md vendored @md */
`

func runIn(t *testing.T, stdin string, argv ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(argv, strings.NewReader(stdin), &buf)
	return buf.String(), err
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	out, err := runIn(t, "", dir)
	require.NoError(t, err)

	readme := filepath.Join(dir, "README.md")
	assert.Contains(t, out, "Markdown content generated in '"+filepath.ToSlash(readme)+"'")

	content := readFile(t, readme)
	assert.True(t, strings.HasPrefix(content, "# acme/widget\n\nWidgets for everyone\n\n"), content)
	assert.Contains(t, content, "### /src/widget.php\n")
	assert.Contains(t, content, "Builds widgets.")
	assert.Contains(t, content, "/src/helper.js")
	assert.Contains(t, content, "## License  \nMIT  \n")
	assert.NotContains(t, content, "vendored")
	assert.NotContains(t, content, "composer.json")
}

func TestGenerateSingleFile(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", filepath.Join(dir, "src", "widget.php"))
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "src", "README.md"))
	assert.Contains(t, content, "### /widget.php\n")
	assert.NotContains(t, content, "helper.js")
}

func TestGenerateSingleFileUncleanPath(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", filepath.ToSlash(dir)+"/src/./widget.php")
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "src", "README.md"))
	assert.Contains(t, content, "### /widget.php\n")
	assert.NotContains(t, content, "/src/./widget.php")
}

func TestGenerateMalformedMetadata(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, `
-- composer.json --
{"name":"x",}
-- a.txt --
/** @md Still generated @md */
`)
	var buf bytes.Buffer
	code := runMain(context.Background(), []string{dir}, strings.NewReader(""), &buf)
	require.Equal(t, 0, code, buf.String())

	content := readFile(t, filepath.Join(dir, "README.md"))
	assert.True(t, strings.HasPrefix(content, assemble.Rule+"\n"+assemble.Rule+"\n\n"), content)
	assert.Contains(t, content, "Still generated")
}

func TestMalformedMetadataWarning(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, `
-- composer.json --
{"name":"x",}
-- a.txt --
/** @md a @md */
`)
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-format=json", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stderr.String(), `"msg":"ignoring project metadata"`)
	assert.Contains(t, stderr.String(), `"level":"WARN"`)
}

func TestOverwritePrompt(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("hand written\n"), 0o644))

	out, err := runIn(t, "n\n", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Already exists!")
	assert.Contains(t, out, "ABORTING!")
	assert.Equal(t, "hand written\n", readFile(t, readme))

	out, err = runIn(t, " Y \n", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Thank you, continuing...")
	assert.Contains(t, readFile(t, readme), "Builds widgets.")
}

func TestOverwriteYes(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("hand written\n"), 0o644))

	out, err := runIn(t, "", "-y", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "Already exists!")
	assert.Contains(t, readFile(t, readme), "Builds widgets.")
}

func TestNameMDFlag(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", "--namemd=DOCS.md", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "DOCS.md"))
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))
}

func TestLegacySingleDashFlags(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", "-namemd=LEGACY.md", "-skip=src/helper.js", dir)
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "LEGACY.md"))
	assert.NotContains(t, content, "helper.js")
	assert.Contains(t, content, "Builds widgets.")
}

func TestSkipOverwrite(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", "--skip=src", "--skip-overwrite", dir)
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, content, "vendored")
	assert.NotContains(t, content, "widget.php")
}

func TestSkipPattern(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", `--skip=:REGEXP:src/.*\.js`, dir)
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "README.md"))
	assert.NotContains(t, content, "helper.js")
	assert.Contains(t, content, "widget.php")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project+`
-- .mdgen.yaml --
namemd: DOCS.md
skip:
  - src/helper.js
`)
	_, err := runIn(t, "", dir)
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "DOCS.md"))
	assert.NotContains(t, content, "helper.js")
	assert.NotContains(t, content, ".mdgen.yaml")
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project+`
-- .mdgen.yaml --
namemd: DOCS.md
`)
	_, err := runIn(t, "", "--namemd=OUT.md", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "OUT.md"))
	assert.NoFileExists(t, filepath.Join(dir, "DOCS.md"))
}

func TestConfigFileInvalid(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project+`
-- .mdgen.yaml --
namemd: [not, a, string]
`)
	_, err := runIn(t, "", dir)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))
}

func TestConfigFileMissing(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	_, err := runIn(t, "", "--config", filepath.Join(dir, "nope.yaml"), dir)
	require.ErrorContains(t, err, "not found")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project)
	readme := filepath.Join(dir, "README.md")

	_, err := runIn(t, "", "--check", dir)
	var exitErr *exitError
	require.True(t, errors.As(err, &exitErr), "err = %v", err)
	assert.Equal(t, exitStale, exitErr.code)
	assert.NoFileExists(t, readme)

	_, err = runIn(t, "", dir)
	require.NoError(t, err)

	out, err := runIn(t, "", "--check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "extra.txt"), []byte("/** @md Extra notes @md */\n"), 0o644))
	before := readFile(t, readme)

	out, err = runIn(t, "", "--check", dir)
	require.True(t, errors.As(err, &exitErr), "err = %v", err)
	assert.Equal(t, exitStale, exitErr.code)
	assert.Contains(t, out, "+++ ")
	assert.Contains(t, out, "+Extra notes")
	assert.Equal(t, before, readFile(t, readme))
}

func TestList(t *testing.T) {
	t.Parallel()

	dir := testutil.Tree(t, project+`
-- src/empty.txt --
`)
	out, err := runIn(t, "", "ls", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "widget.php [documented, 1 block]")
	assert.Contains(t, out, "helper.js [undocumented]")
	assert.Contains(t, out, "empty.txt [binary]")
	assert.Contains(t, out, "vendor [skipped]")
	assert.Contains(t, out, "composer.json [skipped]")
	assert.Contains(t, out, "src/")
	assert.NotContains(t, out, "lib.php")
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))
}

func TestConfigSchema(t *testing.T) {
	t.Parallel()

	out, err := runIn(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"namemd"`)
	assert.Contains(t, out, `"skip-overwrite"`)
	assert.Contains(t, out, "mdgen configuration")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{nil, {"--help"}} {
		out, err := runIn(t, "", argv...)
		require.NoError(t, err)
		assert.Contains(t, out, "mdgen [flags] <directory|file>")
		assert.Contains(t, out, "--namemd")
		assert.Contains(t, out, "--skip-overwrite")
		assert.Contains(t, out, "www/package-lock.json")
		assert.Contains(t, out, "completion")
	}
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	out, err := runIn(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "__start_mdgen")

	_, err = runIn(t, "", "completion", "tcsh")
	require.Error(t, err)
}

func TestCompleteLogFlags(t *testing.T) {
	t.Parallel()

	out, err := runIn(t, "", "__complete", "ls", "--log-level", "")
	require.NoError(t, err)
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "warn")

	out, err = runIn(t, "", "__complete", "--log-format", "")
	require.NoError(t, err)
	assert.Contains(t, out, "logfmt")
}

func TestGenDocsCommand(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	_, err := runIn(t, "", "gen-docs", tmp)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(tmp, "mdgen.md"))
	assert.FileExists(t, filepath.Join(tmp, "mdgen_ls.md"))
}

func TestMissingTarget(t *testing.T) {
	t.Parallel()

	_, err := runIn(t, "", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, scan.ErrNotFound)
}

func TestRunMainExitCodes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	code := runMain(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), &buf)
	assert.Equal(t, exitFatal, code)
	assert.Contains(t, buf.String(), "Error: directory or file not found")
	assert.Contains(t, buf.String(), "mdgen --help")

	dir := testutil.Tree(t, project)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x\n"), 0o644))

	buf.Reset()
	code = runMain(context.Background(), []string{dir}, strings.NewReader("n\n"), &buf)
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "ABORTING!")

	buf.Reset()
	code = runMain(context.Background(), []string{"--check", dir}, strings.NewReader(""), &buf)
	assert.Equal(t, exitStale, code)
	assert.Contains(t, buf.String(), "is out of date")
}

func TestNormalizeLegacyArgs(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   []string
		want []string
	}{
		"unchanged": {
			in:   []string{"--namemd=x.md", "-y", "dir"},
			want: []string{"--namemd=x.md", "-y", "dir"},
		},
		"single dash long": {
			in:   []string{"-namemd=x.md", "-skip-overwrite", "dir"},
			want: []string{"--namemd=x.md", "--skip-overwrite", "dir"},
		},
		"after terminator": {
			in:   []string{"-yes", "--", "-namemd=x.md"},
			want: []string{"--yes", "--", "-namemd=x.md"},
		},
		"unknown": {
			in:   []string{"-bogus", "dir"},
			want: []string{"-bogus", "dir"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, normalizeLegacyArgs(tc.in))
		})
	}
}
