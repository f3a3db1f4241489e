// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert invokes the external document-format converters used during
// migration: moin2rst (page revision to reStructuredText) and pandoc
// (reStructuredText to GitHub Markdown). Both are opaque text-to-text
// collaborators; a failed conversion never aborts the migration of a version.
package convert

import (
	"os/exec"
)

// RevisionConverter produces a reStructuredText rendering of one page
// revision. Implementations are pluggable so the converter can be swapped
// without touching replay logic.
type RevisionConverter interface {
	// Convert renders the revision of the page named by its decoded title.
	Convert(pageTitle string, revision int) (string, error)
}

// Renderer converts a markup file on disk into a derived rendering at dst.
type Renderer interface {
	Render(src, dst string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunOutput(name string, args ...string) ([]byte, error)
	RunSilent(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

var defaultExec = &osExecutor{}
