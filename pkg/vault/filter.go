package vault

import "strings"

// Filter decides which files qualify for path normalization.
type Filter struct {
	excluded []string
}

// NewFilter creates a filter from the configured excluded-folder prefixes.
func NewFilter(excluded []string) *Filter {
	return &Filter{excluded: excluded}
}

// Eligible reports whether a file should be processed: the extension must be
// exactly "md" (case-sensitive) and the vault-relative path must not start
// with any excluded prefix.
//
// Exclusion is a plain string-prefix match, not segment-aware: the prefix
// "ex/te" also excludes "ex/text/file.md". This matches the long-standing
// behavior users have built their exclusion lists around.
func (f *Filter) Eligible(file File) bool {
	if file.Extension != "md" {
		return false
	}
	for _, prefix := range f.excluded {
		if prefix != "" && strings.HasPrefix(file.Path, prefix) {
			return false
		}
	}
	return true
}
