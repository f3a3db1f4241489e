// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// SentinelRevision marks an attachment-only event in a MoinMoin edit log.
// Entries carrying it are never replayed as content commits.
const SentinelRevision = "99999999"

// UserRecord holds the attributes parsed from one MoinMoin user file.
// Attribute names are passed through as found; the migration only interprets
// "name", "username", and "email".
type UserRecord map[string]string

// EditLogEntry is one line of a page's edit log: a single historical edit.
type EditLogEntry struct {
	// Time is the edit timestamp, decoded from the log's microsecond field.
	Time time.Time `json:"time" yaml:"time"`

	// Revision is the revision identifier. Numeric, but compared as a string;
	// SentinelRevision denotes an attachment event.
	Revision string `json:"revision" yaml:"revision"`

	// Action is the MoinMoin action that produced the edit (e.g. "SAVE").
	Action string `json:"action" yaml:"action"`

	// PageName is the page name as recorded in the log line.
	PageName string `json:"page_name" yaml:"page_name"`

	// Addr is the editor's network address, used as the last-resort
	// display-name fallback for unknown users.
	Addr string `json:"addr" yaml:"addr"`

	// Hostname is the editor's resolved hostname.
	Hostname string `json:"hostname" yaml:"hostname"`

	// UserID is the internal identifier keying into the user registry.
	UserID string `json:"user_id" yaml:"user_id"`

	// Extra is the log line's extra field, unused by the migration.
	Extra string `json:"extra" yaml:"extra"`

	// Comment is the free-text edit comment, used as the commit message.
	Comment string `json:"comment" yaml:"comment"`
}

// ContentState distinguishes the three outcomes of loading a revision blob.
// The original tool collapsed "blob missing" and "blob unreadable" into one
// empty-string signal; keeping them apart prevents an I/O failure from being
// replayed as a page deletion.
type ContentState int

const (
	// ContentPresent means the blob was read and the page has content.
	ContentPresent ContentState = iota

	// ContentDeleted means the blob is absent or empty: the page was deleted
	// at this revision and the target file must be removed.
	ContentDeleted

	// ContentUnreadable means the blob exists but could not be read. The
	// revision is skipped during replay rather than committed as a delete.
	ContentUnreadable
)

// Version is one replayable page revision, resolved from an edit-log entry,
// the revision blob store, and the user registry.
type Version struct {
	// Date is the edit timestamp, used as the commit time.
	Date time.Time

	// State reports whether Content holds page text, a deletion, or an
	// unreadable blob.
	State ContentState

	// Content is the page text at this revision. Empty unless State is
	// ContentPresent.
	Content string

	// RSTContent is the optional reStructuredText rendering of the revision,
	// empty when conversion is disabled or failed.
	RSTContent string

	// Name and Email identify the commit author.
	Name  string
	Email string

	// Message is the commit message; blank messages are substituted at
	// replay time.
	Message string

	// Revision is the source revision identifier, the idempotency key for
	// the checkpoint ledger.
	Revision string
}

// Author formats the version's author as "Name <email>".
func (v Version) Author() string {
	return fmt.Sprintf("%s <%s>", v.Name, v.Email)
}
