package booklet

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// UnitName derives the output name of a section: "<title>-<document name>".
// Untitled sections fall back to "section-<n>" with n 1-based.
func UnitName(title string, index int, documentName string) string {
	base := sanitize(title)
	if base == "" {
		base = fmt.Sprintf("section-%d", index+1)
	}
	doc := sanitize(filepath.Base(documentName))
	if doc == "" {
		return base + ".pdf"
	}
	if !strings.EqualFold(filepath.Ext(doc), ".pdf") {
		doc += ".pdf"
	}
	return base + "-" + doc
}

func sanitize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = invalidFilenameChars.ReplaceAllString(s, "_")
	return strings.Trim(s, ". ")
}

// nameSet hands out unit names unique within one job. File systems may
// ignore case, so names are compared case-insensitively.
type nameSet map[string]bool

// claim returns name, or name with a " (n)" suffix before its extension
// when an earlier unit already took it.
func (s nameSet) claim(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	unique := name
	for n := 2; s[strings.ToLower(unique)]; n++ {
		unique = fmt.Sprintf("%s (%d)%s", base, n, ext)
	}
	s[strings.ToLower(unique)] = true
	return unique
}
