// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "multibyte and space escapes",
			raw:  "Tom(c3a1)s(20)S(c3a1)nchez(20)Garc(c3ad)a",
			want: "Tomás Sánchez García",
		},
		{
			name: "plain ascii passes through",
			raw:  "FrontPage",
			want: "FrontPage",
		},
		{
			name: "slash escape",
			raw:  "Admin(2f)Backup",
			want: "Admin/Backup",
		},
		{
			name: "unmatched parens pass through",
			raw:  "Page(notahex)Name",
			want: "Page(notahex)Name",
		},
		{
			name: "odd-length group drops the trailing digit",
			raw:  "Page(abc)Name",
			want: "Page\xabName",
		},
		{
			name: "odd-length group alongside even groups",
			raw:  "Wiki(20)Page(abc)",
			want: "Wiki Page\xab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw))
		})
	}
}

func TestHyphenate(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"EditLog", "Edit-Log"},
		{"WikiSandBox", "Wiki-Sand-Box"},
		{"lowercase", "lowercase"},
		{"Tomás Sánchez", "Tomás Sánchez"},
		// Manual overrides always win, regardless of transitions.
		{"FrontPage", "Home"},
		{"PythonOSOps", "Python-OS-Ops"},
		{"GNUParallel", "GNU-Parallel"},
		{"AWSBackup", "AWS-Backup"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Hyphenate(tt.title))
		})
	}
}

// Repeated runs must derive the same path for a page: applying the transform
// to its own output changes nothing.
func TestHyphenateIdempotent(t *testing.T) {
	for _, title := range []string{"EditLog", "WikiSandBox", "FrontPage", "Tomás Sánchez"} {
		once := Hyphenate(title)
		assert.Equal(t, once, Hyphenate(once), "title %q", title)
	}
}

func TestNew(t *testing.T) {
	p := New("Wiki(20)SandBox")
	assert.Equal(t, "Wiki(20)SandBox", p.Raw)
	assert.Equal(t, "Wiki SandBox", p.Title)
	assert.Equal(t, "Wiki Sand-Box", p.Stem)
}
