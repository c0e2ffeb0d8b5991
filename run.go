package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/spf13/pflag"

	"github.com/agentflare-ai/mdgen/internal/assemble"
	"github.com/agentflare-ai/mdgen/internal/config"
	"github.com/agentflare-ai/mdgen/internal/log"
	"github.com/agentflare-ai/mdgen/internal/metadata"
	"github.com/agentflare-ai/mdgen/internal/output"
	"github.com/agentflare-ai/mdgen/internal/prompt"
	"github.com/agentflare-ai/mdgen/internal/scan"
	"github.com/agentflare-ai/mdgen/internal/skip"
)

const defaultNameMD = "README.md"

type options struct {
	nameMD        string
	skip          []string
	skipOverwrite bool
	yes           bool
	check         bool
	configPath    string
	tag           string
}

type cliApp struct {
	stdin  io.Reader
	stdout io.Writer
	opts   options
	logCfg *log.Config
	logger *slog.Logger
	flags  *pflag.FlagSet
}

// exitError ends the process with code without the fatal error banner.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func run(argv []string, stdin io.Reader, stdout io.Writer) error {
	return runContext(context.Background(), argv, stdin, stdout)
}

func runContext(ctx context.Context, argv []string, stdin io.Reader, stdout io.Writer) error {
	cmd := newRootCmd(stdin, stdout)
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.ExecuteContext(ctx)
}

// plan is everything a run needs before reading any file.
type plan struct {
	target  scan.Target
	filter  *skip.Filter
	output  string
	options options
}

func (app *cliApp) log() *slog.Logger {
	if app.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return app.logger
}

func (app *cliApp) printer() *output.Printer {
	return output.NewPrinter(app.stdout)
}

// prepare resolves the target and merges flags with the configuration file.
func (app *cliApp) prepare(arg string) (plan, error) {
	target, err := scan.Resolve(arg)
	if err != nil {
		return plan{}, err
	}

	opts, cfgFound, err := app.mergeConfig(target)
	if err != nil {
		return plan{}, err
	}

	rules := skip.Compose(skip.ParseRules(opts.skip), opts.nameMD, opts.skipOverwrite)
	if cfgFound {
		rules = append(rules, skip.LiteralRule(config.FileName))
	}
	filter, err := skip.NewFilter(target.Root, rules)
	if err != nil {
		return plan{}, err
	}

	app.log().Debug("resolved target",
		slog.String("path", target.Path),
		slog.String("root", target.Root),
		slog.Bool("dir", target.IsDir),
		slog.Any("skip", rules.Strings()),
	)
	return plan{
		target:  target,
		filter:  filter,
		output:  target.OutputPath(opts.nameMD),
		options: opts,
	}, nil
}

// mergeConfig applies configuration file values for every flag the user
// did not set.
func (app *cliApp) mergeConfig(target scan.Target) (options, bool, error) {
	opts := app.opts
	cfgPath := opts.configPath
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = path.Join(target.Root, config.FileName)
	}

	cfg, found, err := config.Load(cfgPath)
	if err != nil {
		return opts, false, err
	}
	if !found {
		if explicit {
			return opts, false, fmt.Errorf("configuration file '%s' not found", cfgPath)
		}
		return opts, false, nil
	}
	app.log().Debug("loaded configuration", slog.String("path", cfgPath))

	if cfg.NameMD != "" && !app.changed("namemd") {
		opts.nameMD = cfg.NameMD
	}
	if len(cfg.Skip) > 0 && !app.changed("skip") {
		opts.skip = cfg.Skip
	}
	if cfg.SkipOverwrite && !app.changed("skip-overwrite") {
		opts.skipOverwrite = true
	}
	opts.tag = cfg.Tag
	return opts, true, nil
}

func (app *cliApp) changed(name string) bool {
	return app.flags != nil && app.flags.Changed(name)
}

func (app *cliApp) assembler(p plan) (*assemble.Assembler, error) {
	metaPath := path.Join(p.target.Root, metadata.FileName)
	meta, err := metadata.Load(metaPath)
	switch {
	case errors.Is(err, metadata.ErrMalformed):
		app.log().Warn("ignoring project metadata",
			slog.String("path", metaPath),
			slog.Any("err", err),
		)
		meta = metadata.Project{}
	case err != nil:
		return nil, err
	}
	return &assemble.Assembler{
		Target: p.target,
		Meta:   meta,
		Tag:    p.options.tag,
		Logger: app.log(),
	}, nil
}

func (app *cliApp) generate(ctx context.Context, p plan) (assemble.Document, error) {
	paths, err := scan.Collect(p.target, p.filter)
	if err != nil {
		return assemble.Document{}, err
	}
	a, err := app.assembler(p)
	if err != nil {
		return assemble.Document{}, err
	}
	return a.Assemble(ctx, paths)
}

func (app *cliApp) execute(ctx context.Context, arg string) error {
	p, err := app.prepare(arg)
	if err != nil {
		return err
	}

	if p.options.check {
		doc, err := app.generate(ctx, p)
		if err != nil {
			return err
		}
		return app.checkOutput(p.output, doc)
	}

	exists, err := fileExists(p.output)
	if err != nil {
		return err
	}
	if exists && !p.options.yes {
		ok, err := prompt.Overwrite(app.stdin, app.printer(), p.output)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	doc, err := app.generate(ctx, p)
	if err != nil {
		return err
	}
	if err := assemble.WriteFile(p.output, doc); err != nil {
		return err
	}
	app.log().Info("generated markdown",
		slog.String("path", p.output),
		slog.Int("documented", len(doc.Files)-len(doc.Undocumented)),
		slog.Int("undocumented", len(doc.Undocumented)),
		slog.Int("skipped", len(doc.Skipped)),
	)
	app.printer().Success(fmt.Sprintf("Markdown content generated in '%s'", p.output))
	return nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

var legacyLongFlagSet = map[string]struct{}{
	"namemd":         {},
	"skip":           {},
	"skip-overwrite": {},
	"yes":            {},
	"check":          {},
	"config":         {},
	"help":           {},
	"version":        {},
	"log-level":      {},
	"log-format":     {},
}

// normalizeLegacyArgs turns single-dash long flags ("-namemd=x") into their
// double-dash form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if _, ok := legacyLongFlagSet[name]; ok {
			if hasValue {
				converted = append(converted, "--"+name+"="+value)
			} else {
				converted = append(converted, "--"+name)
			}
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
