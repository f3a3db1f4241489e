// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagename normalizes MoinMoin page directory names into
// human-readable titles and repository-safe path stems.
package pagename

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// escapeGroup matches MoinMoin's quoting of non-ASCII and reserved characters
// in page directory names: two or four lowercase hex digits in parentheses,
// e.g. "Tom(c3a1)s(20)S(c3a1)nchez".
var escapeGroup = regexp.MustCompile(`\(([a-f0-9]{2,4})\)`)

// hyphenOverrides maps page titles to fixed path stems, bypassing the
// case-transition transform. This is a growing operator-maintained exception
// list; keep it declarative.
var hyphenOverrides = map[string]string{
	"PythonOSOps":  "Python-OS-Ops",
	"GNUParallel":  "GNU-Parallel",
	"FrontPage":    "Home",
	"CWLMake":      "CWL-Make",
	"ITMistakes":   "IT-Mistakes",
	"MiscSysAdmin": "Misc-SysAdmin",
	"AWSBackup":    "AWS-Backup",
}

// Page is a wiki page identifier in its three forms.
type Page struct {
	// Raw is the page directory name as found on disk.
	Raw string

	// Title is the decoded human-readable title.
	Title string

	// Stem is the hyphenated path stem used for repository files, without
	// an extension.
	Stem string
}

// New decodes and hyphenates a raw page directory name.
func New(raw string) Page {
	title := Decode(raw)
	return Page{Raw: raw, Title: title, Stem: Hyphenate(title)}
}

// Decode translates parenthesized hex escape groups into percent escapes two
// digits at a time, then percent-decodes the result. Decoding is best-effort:
// input that does not survive percent-decoding is returned with only the
// escape-group translation applied.
func Decode(raw string) string {
	quoted := escapeGroup.ReplaceAllStringFunc(raw, func(group string) string {
		hex := group[1 : len(group)-1]
		var b strings.Builder
		// A trailing odd digit cannot form a byte escape; drop it.
		for i := 0; i+2 <= len(hex); i += 2 {
			b.WriteByte('%')
			b.WriteString(hex[i : i+2])
		}
		return b.String()
	})

	decoded, err := url.PathUnescape(quoted)
	if err != nil {
		return quoted
	}
	return decoded
}

// Hyphenate converts each lower-to-upper case transition into a hyphen
// delimiter ("EditLog" -> "Edit-Log"), except for titles in the manual
// override table, which always map to their fixed stem. The transform is
// idempotent: hyphens already present suppress further insertion.
func Hyphenate(title string) string {
	if stem, ok := hyphenOverrides[title]; ok {
		return stem
	}

	runes := []rune(title)
	var b strings.Builder
	for i, r := range runes {
		b.WriteRune(r)
		if i < len(runes)-1 && unicode.IsLower(r) && unicode.IsUpper(runes[i+1]) {
			b.WriteRune('-')
		}
	}
	return b.String()
}
