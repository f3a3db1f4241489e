// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
)

const binPandoc = "pandoc"

// Pandoc renders reStructuredText files to GitHub Markdown via the pandoc
// binary.
type Pandoc struct {
	exec executor
}

// NewPandoc creates a renderer, verifying pandoc is on PATH.
func NewPandoc() (*Pandoc, error) {
	return newPandoc(defaultExec)
}

func newPandoc(exec executor) (*Pandoc, error) {
	if _, err := exec.LookPath(binPandoc); err != nil {
		return nil, fmt.Errorf("%s not available: %w", binPandoc, err)
	}
	return &Pandoc{exec: exec}, nil
}

// Render converts the reStructuredText file at src into Markdown at dst.
func (p *Pandoc) Render(src, dst string) error {
	if err := p.exec.RunSilent(binPandoc, src, "-f", "rst", "-t", "markdown_github", "-o", dst); err != nil {
		return fmt.Errorf("rendering %s with %s: %w", src, binPandoc, err)
	}
	return nil
}
