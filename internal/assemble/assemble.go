// Package assemble builds the generated Markdown document from the
// annotated doc comments of a set of files.
//
// The document starts with the project name and description, continues with
// one section per documented file in the order the files are given, lists
// files that carry no annotated documentation, and ends with the license and
// author sections. Empty and binary files are left out entirely.
package assemble

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/agentflare-ai/mdgen/internal/atomicio"
	"github.com/agentflare-ai/mdgen/internal/binary"
	"github.com/agentflare-ai/mdgen/internal/extract"
	"github.com/agentflare-ai/mdgen/internal/metadata"
	"github.com/agentflare-ai/mdgen/internal/scan"
)

// FileRecord is the extraction result of one text file.
type FileRecord struct {
	// Name is the display name: the path without the root prefix.
	Name   string
	Path   string
	Blocks []string
}

// Document is a generated document and what went into it.
type Document struct {
	Content []byte
	// Files lists every text file read, documented or not, in order.
	Files []FileRecord
	// Undocumented holds the display names of text files without blocks.
	Undocumented []string
	// Skipped holds the empty and binary files.
	Skipped []FileRecord
}

// Assembler generates a document for one scan target.
type Assembler struct {
	Target scan.Target
	Meta   metadata.Project
	// Tag overrides [extract.Tag] when set.
	Tag    string
	Logger *slog.Logger
}

func (a *Assembler) tag() string {
	if a.Tag != "" {
		return a.Tag
	}
	return extract.Tag
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Assemble reads paths in the given order and renders the document in
// memory. It stops early when ctx is cancelled.
func (a *Assembler) Assemble(ctx context.Context, paths []string) (Document, error) {
	authors, err := a.Meta.AuthorBlocks()
	if err != nil {
		return Document{}, err
	}

	var (
		doc      Document
		buf      bytes.Buffer
		renderer = markdownRenderer{tag: a.tag()}
		log      = a.logger()
	)
	renderer.renderHeader(&buf, a.Meta)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		rec, ok, err := a.read(path)
		if err != nil {
			return Document{}, err
		}
		if !ok {
			log.DebugContext(ctx, "skipping empty or binary file", slog.String("path", path))
			doc.Skipped = append(doc.Skipped, rec)
			continue
		}
		doc.Files = append(doc.Files, rec)
		if len(rec.Blocks) == 0 {
			log.DebugContext(ctx, "no annotated documentation", slog.String("path", path))
			doc.Undocumented = append(doc.Undocumented, rec.Name)
			continue
		}
		log.DebugContext(ctx, "documented file", slog.String("path", path), slog.Int("blocks", len(rec.Blocks)))
		renderer.renderFile(&buf, rec)
	}

	renderer.renderUndocumented(&buf, doc.Undocumented)
	renderer.renderLicenses(&buf, a.Meta.Licenses)
	renderer.renderAuthors(&buf, authors)

	doc.Content = buf.Bytes()
	return doc, nil
}

// read extracts the annotated blocks of path. ok is false for empty and
// binary files.
func (a *Assembler) read(path string) (FileRecord, bool, error) {
	rec := FileRecord{Name: a.Target.DisplayName(path), Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, false, fmt.Errorf("read %s: %w", path, err)
	}
	if binary.IsBinaryOrEmpty(data) {
		return rec, false, nil
	}
	content := extract.Normalize(string(data), extract.HintFor(path))
	rec.Blocks = extract.Extract(content, a.tag())
	return rec, true, nil
}

// WriteFile writes the document content to path, replacing any previous
// file in one step.
func WriteFile(path string, doc Document) error {
	if err := atomicio.WriteFile(path, doc.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
