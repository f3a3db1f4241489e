// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/moin2git/internal/pagename"
	"github.com/pdiddy/moin2git/pkg/types"
)

// fakeConverter returns canned reStructuredText or an error per revision.
type fakeConverter struct {
	rst  string
	err  error
	got  []int
	page string
}

func (f *fakeConverter) Convert(pageTitle string, revision int) (string, error) {
	f.page = pageTitle
	f.got = append(f.got, revision)
	if f.err != nil {
		return "", f.err
	}
	return f.rst, nil
}

func writeRevision(t *testing.T, pageDir, rev, content string) {
	t.Helper()
	dir := filepath.Join(pageDir, "revisions")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, rev), []byte(content), 0o644))
}

func entry(rev, uid, addr, comment string) types.EditLogEntry {
	return types.EditLogEntry{
		Time:     time.Unix(1234567890, 0),
		Revision: rev,
		UserID:   uid,
		Addr:     addr,
		Comment:  comment,
	}
}

func TestVersionsAuthorFallback(t *testing.T) {
	users := map[string]types.UserRecord{
		"full":      {"name": "Ana García", "username": "ana", "email": "ana@example.com"},
		"aliasless": {"username": "eze", "email": "eze@example.com"},
		"bare":      {},
	}
	pageDir := t.TempDir()
	for _, rev := range []string{"00000001", "00000002", "00000003", "00000004"} {
		writeRevision(t, pageDir, rev, "content")
	}

	r := New(users, "", nil)
	var w bytes.Buffer
	versions := r.Versions(pageDir, pagename.New("Page"), []types.EditLogEntry{
		entry("00000001", "full", "10.0.0.1", ""),
		entry("00000002", "aliasless", "10.0.0.2", ""),
		entry("00000003", "bare", "10.0.0.3", ""),
		entry("00000004", "unknown", "10.0.0.4", ""),
	}, &w)

	require.Len(t, versions, 4)
	assert.Equal(t, "Ana García <ana@example.com>", versions[0].Author())
	assert.Equal(t, "eze <eze@example.com>", versions[1].Author())
	// No name or username: the entry's address field wins, email defaults.
	assert.Equal(t, "10.0.0.3 <an@nymous.com>", versions[2].Author())
	assert.Equal(t, "10.0.0.4 <an@nymous.com>", versions[3].Author())
}

func TestVersionsContentStates(t *testing.T) {
	pageDir := t.TempDir()
	writeRevision(t, pageDir, "00000001", "hello world")
	writeRevision(t, pageDir, "00000002", "")

	r := New(nil, "", nil)
	var w bytes.Buffer
	versions := r.Versions(pageDir, pagename.New("Page"), []types.EditLogEntry{
		entry("00000001", "u", "10.0.0.1", "add"),
		entry("00000002", "u", "10.0.0.1", "blank out"),
		entry("00000003", "u", "10.0.0.1", "delete"),
	}, &w)

	require.Len(t, versions, 3)
	assert.Equal(t, types.ContentPresent, versions[0].State)
	assert.Equal(t, "hello world", versions[0].Content)
	// An existing-but-empty blob and a missing blob both mean deletion.
	assert.Equal(t, types.ContentDeleted, versions[1].State)
	assert.Equal(t, types.ContentDeleted, versions[2].State)
	assert.Empty(t, versions[2].Content)
}

func TestVersionsUnreadableBlob(t *testing.T) {
	pageDir := t.TempDir()
	writeRevision(t, pageDir, "00000001", "secret")
	blob := filepath.Join(pageDir, "revisions", "00000001")
	require.NoError(t, os.Chmod(blob, 0o000))
	t.Cleanup(func() { os.Chmod(blob, 0o644) })

	r := New(nil, "", nil)
	var w bytes.Buffer
	versions := r.Versions(pageDir, pagename.New("Page"), []types.EditLogEntry{
		entry("00000001", "u", "10.0.0.1", ""),
	}, &w)

	require.Len(t, versions, 1)
	// A permission failure is not a deletion.
	assert.Equal(t, types.ContentUnreadable, versions[0].State)
	assert.Contains(t, w.String(), "unreadable")
}

func TestVersionsConversion(t *testing.T) {
	pageDir := t.TempDir()
	writeRevision(t, pageDir, "00000001", "content")

	conv := &fakeConverter{rst: "Title\n=====\n"}
	r := New(nil, "", conv)
	var w bytes.Buffer
	versions := r.Versions(pageDir, pagename.New("Wiki(20)Page"), []types.EditLogEntry{
		entry("00000001", "u", "10.0.0.1", ""),
		entry(types.SentinelRevision, "u", "10.0.0.1", ""),
	}, &w)

	require.Len(t, versions, 2)
	assert.Equal(t, "Title\n=====\n", versions[0].RSTContent)
	// The converter sees the decoded title and the numeric revision, and is
	// never invoked for the attachment sentinel.
	assert.Equal(t, "Wiki Page", conv.page)
	assert.Equal(t, []int{1}, conv.got)
	assert.Empty(t, versions[1].RSTContent)
}

func TestVersionsConversionFailureDegrades(t *testing.T) {
	pageDir := t.TempDir()
	writeRevision(t, pageDir, "00000001", "content")

	r := New(nil, "", &fakeConverter{err: errors.New("converter crashed")})
	var w bytes.Buffer
	versions := r.Versions(pageDir, pagename.New("Page"), []types.EditLogEntry{
		entry("00000001", "u", "10.0.0.1", "msg"),
	}, &w)

	require.Len(t, versions, 1)
	assert.Empty(t, versions[0].RSTContent)
	assert.Equal(t, types.ContentPresent, versions[0].State, "primary content survives converter failure")
	assert.Contains(t, w.String(), "converter crashed")
}
