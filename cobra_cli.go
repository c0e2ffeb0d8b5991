package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/mdgen/internal/config"
	"github.com/agentflare-ai/mdgen/internal/log"
	"github.com/agentflare-ai/mdgen/internal/skip"
)

const rootLongDesc = `
mdgen generates a Markdown file from the contents of every file in a directory
(or from a single file), whatever the file type.

It collects the text of php-like doc comments annotated with @md:

  /** This is not included @md and now it is in the .md file */

Everything between the first and the second @md is used, or everything after
a single @md up to the end of the comment. Files in line-comment dialects
(*.conf) may prefix the comment lines with "#".

'composer.json' in the scanned directory supplies the heading, description,
license and authors. The Markdown file is saved into the scanned directory, or
next to the scanned file. Empty and binary files are ignored.

Skip rules are case insensitive and only apply when scanning a directory.
Prefix a rule with ` + skip.PatternPrefix + ` to use a regular expression. Default rules:

`

func longDesc() string {
	var b strings.Builder
	b.WriteString(strings.TrimLeft(rootLongDesc, "\n"))
	for _, r := range skip.Defaults() {
		fmt.Fprintf(&b, "  %s\n", r)
	}
	return strings.TrimRight(b.String(), "\n")
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	app := &cliApp{stdin: stdin, stdout: stdout, logCfg: log.NewConfig()}
	cmd := &cobra.Command{
		Use:           "mdgen [flags] <directory|file>",
		Short:         "Generate a Markdown file from @md annotated doc comments",
		Long:          longDesc(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&app.opts.nameMD, "namemd", defaultNameMD, "set generated .md file name")
	pflags.StringArrayVar(&app.opts.skip, "skip", nil, "skip a subdirectory or file; repeat for several rules")
	pflags.BoolVar(&app.opts.skipOverwrite, "skip-overwrite", false, "--skip rules replace the default rules instead of extending them")
	pflags.StringVar(&app.opts.configPath, "config", "", "configuration file (default <root>/"+config.FileName+" when present)")
	app.logCfg.RegisterFlags(pflags)
	if err := app.logCfg.RegisterCompletions(cmd); err != nil {
		panic(err)
	}

	flags := cmd.Flags()
	flags.BoolVarP(&app.opts.yes, "yes", "y", false, "overwrite an existing file without asking")
	flags.BoolVar(&app.opts.check, "check", false, "do not write; fail and show the changes when the file is out of date")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		handler, err := app.logCfg.NewHandler(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		app.logger = slog.New(handler)
		app.flags = cmd.Flags()
		return nil
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args[0])
	}

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newListCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls <directory|file>",
		Short: "Show which files are documented, undocumented or skipped",
		Long: strings.TrimSpace(`
Print the scanned tree with the status of every entry, without writing
anything. Entries are marked documented (with their number of blocks),
undocumented, binary (empty or binary content) or skipped (by a skip rule).
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.list(ctx, args[0])
	}
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file format",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of " + config.FileName,
		Long: strings.TrimSpace(`
Print the JSON Schema describing ` + config.FileName + `. Editors with YAML
language support can use it for completion and validation:

  mdgen config schema > mdgen.schema.json
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	})
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for mdgen.

Besides subcommands and flag names, the scripts complete the values of
--log-level and --log-format, and directories or files for the target:

  mdgen ls ./pro<TAB>
  mdgen --log-level <TAB>     # error warn info debug

Load the script for the current session:

  # bash
  source <(mdgen completion bash)

  # zsh
  mdgen completion zsh > "${fpath[1]}/_mdgen"

  # fish
  mdgen completion fish | source

  # PowerShell
  mdgen completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs <directory>",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write the reference of every mdgen command as Markdown, one file per
command (mdgen.md, mdgen_ls.md, ...). The files are named *.md, so the
default skip rules keep them out of a generated README:

  mdgen gen-docs ./docs/cli
  mdgen ./
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if dir == "" {
			return fmt.Errorf("output directory is required")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, dir)
	}
	return cmd
}
