// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns edit-log entries into replayable versions: it loads
// revision blobs, resolves author identity against the user registry, and
// optionally invokes the reStructuredText converter.
package resolve

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/moin2git/internal/convert"
	"github.com/pdiddy/moin2git/internal/pagename"
	"github.com/pdiddy/moin2git/pkg/types"
)

// revisionsSubdir holds one content blob per revision, named by the
// revision identifier.
const revisionsSubdir = "revisions"

// DefaultEmail is the author email for unknown users and users without an
// email attribute.
const DefaultEmail = "an@nymous.com"

// Resolver resolves edit-log entries into versions. The converter is
// optional; when nil, no reStructuredText content is produced.
type Resolver struct {
	users        map[string]types.UserRecord
	defaultEmail string
	converter    convert.RevisionConverter
}

// New creates a resolver. An empty defaultEmail falls back to DefaultEmail.
func New(users map[string]types.UserRecord, defaultEmail string, converter convert.RevisionConverter) *Resolver {
	if defaultEmail == "" {
		defaultEmail = DefaultEmail
	}
	return &Resolver{users: users, defaultEmail: defaultEmail, converter: converter}
}

// Versions resolves entries in order. The returned slice preserves the edit
// log's own ordering, which is authoritative for replay; no re-sorting by
// timestamp happens here or later. Missing blobs and converter failures
// degrade per version, never abort.
func (r *Resolver) Versions(pageDir string, page pagename.Page, entries []types.EditLogEntry, w io.Writer) []types.Version {
	versions := make([]types.Version, 0, len(entries))
	for _, entry := range entries {
		v := types.Version{
			Date:     entry.Time,
			Revision: entry.Revision,
			Message:  entry.Comment,
			Email:    r.email(entry.UserID),
			Name:     r.displayName(entry),
		}

		v.State, v.Content = r.loadContent(pageDir, entry.Revision, w)

		if r.converter != nil && entry.Revision != types.SentinelRevision {
			v.RSTContent = r.convertRevision(page.Title, entry.Revision, w)
		}

		versions = append(versions, v)
	}
	return versions
}

func (r *Resolver) email(userID string) string {
	if email := r.users[userID]["email"]; email != "" {
		return email
	}
	return r.defaultEmail
}

// displayName resolves the author name with the registry's "name" attribute
// first, then "username", then the entry's own address field. The precedence
// order is load-bearing for faithful authorship.
func (r *Resolver) displayName(entry types.EditLogEntry) string {
	record := r.users[entry.UserID]
	if name := record["name"]; name != "" {
		return name
	}
	if username := record["username"]; username != "" {
		return username
	}
	return entry.Addr
}

// loadContent reads the revision blob. A missing or empty blob means the
// page was deleted at this revision; any other read failure is reported as
// unreadable so replay does not mistake an I/O problem for a deletion.
func (r *Resolver) loadContent(pageDir, revision string, w io.Writer) (types.ContentState, string) {
	data, err := os.ReadFile(filepath.Join(pageDir, revisionsSubdir, revision))
	switch {
	case os.IsNotExist(err):
		return types.ContentDeleted, ""
	case err != nil:
		fmt.Fprintf(w, "  warning: revision %s unreadable: %v\n", revision, err)
		return types.ContentUnreadable, ""
	case len(data) == 0:
		return types.ContentDeleted, ""
	}
	return types.ContentPresent, string(data)
}

func (r *Resolver) convertRevision(title, revision string, w io.Writer) string {
	n, err := strconv.Atoi(revision)
	if err != nil {
		fmt.Fprintf(w, "  warning: revision %s is not numeric, skipping conversion\n", revision)
		return ""
	}
	rst, err := r.converter.Convert(title, n)
	if err != nil {
		fmt.Fprintf(w, "  warning: %v\n", err)
		return ""
	}
	return rst
}
