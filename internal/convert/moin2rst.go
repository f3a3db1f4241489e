// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/moin2git/pkg/types"
)

const (
	defaultPython = "python"
	defaultScript = "moin2rst/moin2rst.py"
)

// Moin2RST converts page revisions to reStructuredText by running the
// moin2rst Python script against the wiki installation.
type Moin2RST struct {
	python   string
	script   string
	wikiBase string
	exec     executor
}

// NewMoin2RST creates a converter for the wiki rooted two levels above
// dataDir (moin2rst's -d argument). It verifies that the interpreter is on
// PATH and the script exists before returning.
func NewMoin2RST(cfg types.ConversionConfig, dataDir string) (*Moin2RST, error) {
	return newMoin2RST(cfg, dataDir, defaultExec)
}

func newMoin2RST(cfg types.ConversionConfig, dataDir string, exec executor) (*Moin2RST, error) {
	python := cfg.Python
	if python == "" {
		python = defaultPython
	}
	script := cfg.Script
	if script == "" {
		script = defaultScript
	}

	if _, err := exec.LookPath(python); err != nil {
		return nil, fmt.Errorf("python interpreter %q not available: %w", python, err)
	}
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("converter script %s: %w", script, err)
	}

	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data directory %s: %w", dataDir, err)
	}

	return &Moin2RST{
		python:   python,
		script:   script,
		wikiBase: filepath.Dir(filepath.Dir(abs)),
		exec:     exec,
	}, nil
}

// Convert runs the converter script for one revision and returns its stdout.
func (m *Moin2RST) Convert(pageTitle string, revision int) (string, error) {
	out, err := m.exec.RunOutput(m.python, m.script, pageTitle,
		"-d", m.wikiBase, "-r", strconv.Itoa(revision))
	if err != nil {
		return "", fmt.Errorf("converting %s r%d to rst: %w", pageTitle, revision, err)
	}
	return string(out), nil
}
