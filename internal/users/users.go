// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package users loads the MoinMoin user registry from a directory of per-user
// files. Each file is named by the internal user identifier and contains
// line-based key=value pairs (name, email, username, and others, passed
// through opaquely).
package users

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/moin2git/pkg/types"
)

// userSubdir is the registry directory under the wiki data directory.
const userSubdir = "user"

var attrLine = regexp.MustCompile(`(?m)^([a-z_]+)=(.*)$`)

// Load reads every file in dataDir/user/ and returns a map of user id to
// record. Unreadable files are skipped: a user with no record is simply
// absent, and callers treat missing ids as "unknown user". Values are passed
// through without validation.
func Load(dataDir string) (map[string]types.UserRecord, error) {
	dir := filepath.Join(dataDir, userSubdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading user directory %s: %w", dir, err)
	}

	registry := make(map[string]types.UserRecord)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		record := make(types.UserRecord)
		for _, m := range attrLine.FindAllStringSubmatch(string(data), -1) {
			record[m[1]] = m[2]
		}
		registry[entry.Name()] = record
	}

	return registry, nil
}

// LoadFile reads a pre-built JSON users file mapping user id to record,
// as produced by the "users" subcommand.
func LoadFile(path string) (map[string]types.UserRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading users file %s: %w", path, err)
	}

	var registry map[string]types.UserRecord
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("parsing users file %s: %w", path, err)
	}
	return registry, nil
}
