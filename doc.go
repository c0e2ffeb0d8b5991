// # mdgen
//
// `mdgen` generates a Markdown file from the documentation comments found in
// every file of a directory tree, whatever the file type. Only the parts of
// `/** ... */` comments annotated with `@md` end up in the output:
//
//	/**
//	 * Internal notes that stay out of the README.
//	 *
//	 * @md
//	 * Everything from here up to the next tag is documentation.
//	 * @md
//	 */
//
// With a single `@md` the documentation runs to the end of the comment.
// Configuration files that only know `#` line comments (`*.conf`) may write
// the comment as `# /**`, `# * text` and `# */` lines.
//
// ## Usage
//
//	mdgen [flags] <directory|file>
//
// Examples:
//
//   - Generate README.md for a project:
//
//     mdgen ./myproject
//
//   - Use another file name and skip an extra directory:
//
//     mdgen --namemd=DOCS.md --skip=examples ./myproject
//
//   - Fail in CI when the committed README is stale:
//
//     mdgen --check ./myproject
//
//   - See which files carry documentation:
//
//     mdgen ls ./myproject
//
// ## Output
//
// `composer.json` in the scanned directory supplies the title, the
// description, the license and the authors. Then comes one section per
// documented file, in path order, headed by the file path relative to the
// scanned directory. Files without `@md` documentation are listed together
// after the sections. Empty and binary files are ignored.
//
// The output is written to the scanned directory, or next to the scanned
// file. When it already exists mdgen asks before overwriting it, unless `-y`
// is given.
//
// ## Supported Flags
//
//   - `--namemd NAME`: output file name (default `README.md`).
//   - `--skip RULE`: skip a path relative to the scanned directory. Rules
//     match whole path segments and ignore case; prefix a rule with
//     `:REGEXP:` for a regular expression. Repeat for several rules.
//   - `--skip-overwrite`: `--skip` rules replace the default rules.
//   - `-y`, `--yes`: overwrite without asking.
//   - `--check`: show the differences instead of writing, exit 1 when the
//     file is out of date.
//   - `--config FILE`: configuration file (default `.mdgen.yaml` in the
//     scanned directory).
//   - `--log-level`, `--log-format`: diagnostics on stderr.
//
// Single-dash spellings of the long flags (`-namemd=DOCS.md`) are accepted.
//
// ## Configuration File
//
// `.mdgen.yaml` may set `namemd`, `skip`, `skip-overwrite` and `tag`. Flags
// given on the command line win. `mdgen config schema` prints the JSON
// Schema of the file.
//
// ## Exit Status
//
// 0 on success, when help is shown and when overwriting is declined; 1 when
// `--check` finds a stale file; 500 for any error.
package main
