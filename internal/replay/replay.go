// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package replay drives the target git repository: it converts each page's
// resolved version sequence into commits, one commit per original edit, in
// edit-log order. Replay is sequential by construction; each commit must
// observe the working tree left by the previous one.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/pdiddy/moin2git/internal/checkpoint"
	"github.com/pdiddy/moin2git/internal/convert"
	"github.com/pdiddy/moin2git/internal/editlog"
	"github.com/pdiddy/moin2git/internal/pagename"
	"github.com/pdiddy/moin2git/internal/resolve"
	"github.com/pdiddy/moin2git/pkg/types"
)

const (
	// pagesSubdir holds one directory per page under the wiki data directory.
	pagesSubdir = "pages"

	primaryExt   = ".txt"
	secondaryExt = ".rst"
	derivedExt   = ".md"
)

// Engine replays resolved versions against one target repository. The
// renderer is optional (nil disables the derived Markdown artifact); the
// ledger is optional (nil disables idempotent re-runs).
type Engine struct {
	dir      string
	repo     *git.Repository
	worktree *git.Worktree
	renderer convert.Renderer
	ledger   *checkpoint.Ledger
}

// Open creates the target directory if needed and opens or initializes the
// repository in it.
func Open(repoDir string, renderer convert.Renderer, ledger *checkpoint.Ledger) (*Engine, error) {
	repo, err := openOrInit(repoDir)
	if err != nil {
		return nil, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	return &Engine{
		dir:      repoDir,
		repo:     repo,
		worktree: worktree,
		renderer: renderer,
		ledger:   ledger,
	}, nil
}

// PageResult counts the outcomes of replaying one page.
type PageResult struct {
	Commits int
	Skipped int
	Failed  int
}

// Summary aggregates a whole migration run.
type Summary struct {
	Pages   int
	Commits int
	Skipped int
	Failed  int
}

// HasFailures reports whether any version failed to replay.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// MigrateAll replays every page under dataDir/pages. Per-page and
// per-version failures are printed and counted; only an unreadable pages
// directory aborts the run.
func (e *Engine) MigrateAll(dataDir string, resolver *resolve.Resolver, w io.Writer) (Summary, error) {
	root := filepath.Join(dataDir, pagesSubdir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return Summary{}, fmt.Errorf("reading pages directory %s: %w", root, err)
	}

	var summary Summary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		page := pagename.New(entry.Name())
		pageDir := filepath.Join(root, entry.Name())

		logEntries, err := editlog.Parse(pageDir)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", page.Title, err)
			summary.Failed++
			continue
		}
		if len(logEntries) == 0 {
			fmt.Fprintf(w, "ignoring %s (no revisions found)\n", page.Title)
			continue
		}

		versions := resolver.Versions(pageDir, page, logEntries, w)
		result := e.ReplayPage(page, versions, w)

		summary.Pages++
		summary.Commits += result.Commits
		summary.Skipped += result.Skipped
		summary.Failed += result.Failed
	}

	fmt.Fprintf(w, "\nMigration summary: %d pages, %d commits, %d skipped, %d failed\n",
		summary.Pages, summary.Commits, summary.Skipped, summary.Failed)
	return summary, nil
}

// ReplayPage commits the page's versions in order. Attachment sentinels,
// already-committed revisions, and unreadable blobs are skipped; a failure
// in one version never aborts the rest of the page.
func (e *Engine) ReplayPage(page pagename.Page, versions []types.Version, w io.Writer) PageResult {
	path := page.Stem + primaryExt
	fmt.Fprintf(w, "migrating %s -> %s\n", page.Title, path)

	var result PageResult
	for _, v := range versions {
		if v.Revision == types.SentinelRevision {
			result.Skipped++
			continue
		}

		if e.ledger != nil {
			seen, err := e.ledger.Seen(page.Raw, v.Revision)
			if err != nil {
				fmt.Fprintf(w, "  warning: checkpoint lookup r%s: %v\n", v.Revision, err)
			} else if seen {
				fmt.Fprintf(w, "  skipped r%s (already committed)\n", v.Revision)
				result.Skipped++
				continue
			}
		}

		if v.State == types.ContentUnreadable {
			fmt.Fprintf(w, "  skipped r%s (blob unreadable, not treating as delete)\n", v.Revision)
			result.Skipped++
			continue
		}

		hash, err := e.commitVersion(path, v)
		if err != nil {
			fmt.Fprintf(w, "  failed r%s: %v\n", v.Revision, err)
			result.Failed++
			continue
		}

		if e.ledger != nil {
			if err := e.ledger.Record(page.Raw, v.Revision, hash); err != nil {
				fmt.Fprintf(w, "  warning: %v\n", err)
			}
		}

		fmt.Fprintf(w, "  committed r%s %.7s\n", v.Revision, hash)
		result.Commits++
	}
	return result
}

// commitVersion applies one version to the working tree, stages the primary
// and secondary artifacts, and commits with the original author and edit
// time.
func (e *Engine) commitVersion(relPath string, v types.Version) (string, error) {
	abs := filepath.Join(e.dir, filepath.FromSlash(relPath))

	if v.State == types.ContentPresent {
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", filepath.Dir(abs), err)
		}
		if err := os.WriteFile(abs, []byte(v.Content), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", relPath, err)
		}
		if _, err := e.worktree.Add(relPath); err != nil {
			return "", fmt.Errorf("staging %s: %w", relPath, err)
		}
	} else {
		// Deleted content stages a removal, never an empty write.
		if _, err := e.worktree.Remove(relPath); err != nil {
			return "", fmt.Errorf("removing %s: %w", relPath, err)
		}
	}

	if err := e.applySecondary(relPath, v); err != nil {
		return "", err
	}

	message := v.Message
	if strings.TrimSpace(message) == "" {
		message = "Change made on " + v.Date.Format("01/02/06")
	}

	hash, err := e.worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  v.Name,
			Email: v.Email,
			When:  v.Date,
		},
	})
	if err != nil {
		return "", fmt.Errorf("committing r%s: %w", v.Revision, err)
	}
	return hash.String(), nil
}

// applySecondary maintains the reStructuredText artifact and its derived
// Markdown rendering alongside the primary file. When a version stops
// carrying reStructuredText, artifacts left by a prior version are removed.
func (e *Engine) applySecondary(relPath string, v types.Version) error {
	stem := strings.TrimSuffix(relPath, primaryExt)
	rstPath := stem + secondaryExt
	mdPath := stem + derivedExt
	rstAbs := filepath.Join(e.dir, filepath.FromSlash(rstPath))
	mdAbs := filepath.Join(e.dir, filepath.FromSlash(mdPath))

	if v.RSTContent != "" {
		if err := os.WriteFile(rstAbs, []byte(v.RSTContent), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rstPath, err)
		}
		if _, err := e.worktree.Add(rstPath); err != nil {
			return fmt.Errorf("staging %s: %w", rstPath, err)
		}
		if e.renderer != nil {
			if err := e.renderer.Render(rstAbs, mdAbs); err != nil {
				return err
			}
			if _, err := e.worktree.Add(mdPath); err != nil {
				return fmt.Errorf("staging %s: %w", mdPath, err)
			}
		}
		return nil
	}

	if _, err := os.Stat(rstAbs); err == nil {
		if err := e.removeIfTracked(rstPath); err != nil {
			return err
		}
		if err := e.removeIfTracked(mdPath); err != nil {
			return err
		}
	}
	return nil
}

// removeIfTracked stages a removal, tolerating paths the index never saw.
// A derived artifact can be missing when a prior version failed between
// staging the secondary file and rendering it.
func (e *Engine) removeIfTracked(relPath string) error {
	if _, err := e.worktree.Remove(relPath); err != nil && !errors.Is(err, index.ErrEntryNotFound) {
		return fmt.Errorf("removing %s: %w", relPath, err)
	}
	return nil
}
