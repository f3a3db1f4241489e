// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package editlog parses MoinMoin per-page edit logs: append-only,
// tab-delimited, one line per revision event.
package editlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/moin2git/pkg/types"
)

const (
	// logFile is the edit log's name inside a page directory.
	logFile = "edit-log"

	// fieldCount is the fixed number of tab-separated fields per line.
	fieldCount = 9
)

// Parse reads the edit log inside pageDir and returns its entries in file
// order, which is chronological by construction and authoritative for replay.
// A missing or whitespace-only log means the page has no history: Parse
// returns an empty slice and no error. Malformed lines (wrong field count,
// undecodable timestamp) are dropped silently.
func Parse(pageDir string) ([]types.EditLogEntry, error) {
	data, err := os.ReadFile(filepath.Join(pageDir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading edit log in %s: %w", pageDir, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var entries []types.EditLogEntry
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != fieldCount {
			continue
		}

		ts, err := decodeTimestamp(fields[0])
		if err != nil {
			continue
		}

		entries = append(entries, types.EditLogEntry{
			Time:     ts,
			Revision: fields[1],
			Action:   fields[2],
			PageName: fields[3],
			Addr:     fields[4],
			Hostname: fields[5],
			UserID:   fields[6],
			Extra:    fields[7],
			Comment:  fields[8],
		})
	}
	return entries, nil
}

// decodeTimestamp converts a MoinMoin microsecond-epoch field to a time.
// The encoding is literal: drop the last six characters and parse the rest
// as whole seconds. This must stay a character truncation, not a division,
// to match the source encoding when the field has unexpected length.
func decodeTimestamp(field string) (time.Time, error) {
	if len(field) <= 6 {
		return time.Time{}, fmt.Errorf("timestamp field %q too short", field)
	}
	secs, err := strconv.ParseInt(field[:len(field)-6], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp field %q: %w", field, err)
	}
	return time.Unix(secs, 0), nil
}
