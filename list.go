package main

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/disiqueira/gotree/v3"

	"github.com/agentflare-ai/mdgen/internal/scan"
)

const (
	statusSkipped      = "skipped"
	statusBinary       = "binary"
	statusUndocumented = "undocumented"
)

func documentedStatus(blocks int) string {
	if blocks == 1 {
		return "documented, 1 block"
	}
	return fmt.Sprintf("documented, %d blocks", blocks)
}

// list prints the scanned tree of arg with the status of every entry.
func (app *cliApp) list(ctx context.Context, arg string) error {
	p, err := app.prepare(arg)
	if err != nil {
		return err
	}
	doc, err := app.generate(ctx, p)
	if err != nil {
		return err
	}

	status := make(map[string]string, len(doc.Files)+len(doc.Skipped))
	for _, rec := range doc.Files {
		if len(rec.Blocks) == 0 {
			status[rec.Path] = statusUndocumented
		} else {
			status[rec.Path] = documentedStatus(len(rec.Blocks))
		}
	}
	for _, rec := range doc.Skipped {
		status[rec.Path] = statusBinary
	}

	entries, err := scan.Entries(p.target, p.filter)
	if err != nil {
		return err
	}

	root := gotree.New(p.target.Root)
	nodes := map[string]gotree.Tree{p.target.Root: root}
	for _, e := range entries {
		parent, ok := nodes[path.Dir(e.Path)]
		if !ok {
			parent = root
		}
		label := path.Base(e.Path)
		switch {
		case e.Skipped:
			label += " [" + statusSkipped + "]"
		case e.IsDir:
			label += "/"
		case status[e.Path] != "":
			label += " [" + status[e.Path] + "]"
		}
		node := parent.Add(label)
		if e.IsDir {
			nodes[e.Path] = node
		}
	}

	_, err = fmt.Fprint(app.stdout, strings.TrimRight(root.Print(), "\n")+"\n")
	return err
}
