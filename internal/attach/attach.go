// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package attach bulk-copies per-page attachment files into a destination
// tree. Pure copy: no versioning, no conflict resolution, last write wins.
package attach

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/moin2git/internal/pagename"
	"github.com/pdiddy/moin2git/pkg/types"
)

const (
	pagesSubdir       = "pages"
	attachmentsSubdir = "attachments"
)

// Summary counts the outcome of an attachment copy run.
type Summary struct {
	Pages  int
	Copied int
	Failed int
}

// HasFailures reports whether any file failed to copy.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// CopyAll copies every attachment of every page under cfg.DataDir into
// cfg.DestDir/<decoded page title>/, creating directories as needed.
// Per-file failures are printed and counted; only an unreadable pages
// directory or an uncreatable destination aborts.
func CopyAll(cfg types.AttachmentsConfig, w io.Writer) (Summary, error) {
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating destination %s: %w", cfg.DestDir, err)
	}

	root := filepath.Join(cfg.DataDir, pagesSubdir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return Summary{}, fmt.Errorf("reading pages directory %s: %w", root, err)
	}

	var summary Summary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		srcDir := filepath.Join(root, entry.Name(), attachmentsSubdir)
		files, err := os.ReadDir(srcDir)
		if err != nil {
			// No attachments directory is the common case, not an error.
			continue
		}

		page := pagename.New(entry.Name())
		destDir := filepath.Join(cfg.DestDir, page.Title)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", page.Title, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "copying attachments for %s\n", page.Title)
		summary.Pages++

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if err := copyFile(filepath.Join(srcDir, f.Name()), filepath.Join(destDir, f.Name())); err != nil {
				fmt.Fprintf(w, "  failed %s: %v\n", f.Name(), err)
				summary.Failed++
				continue
			}
			fmt.Fprintf(w, "  .. %s\n", f.Name())
			summary.Copied++
		}
	}

	fmt.Fprintf(w, "\nAttachments summary: %d pages, %d copied, %d failed\n",
		summary.Pages, summary.Copied, summary.Failed)
	return summary, nil
}

// copyFile copies src to dst verbatim, overwriting an existing destination.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
