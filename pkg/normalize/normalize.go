package normalize

import (
	"regexp"
	"strings"
)

// Separator is a path separator convention for embed-link paths.
type Separator string

const (
	ForwardSlash Separator = "/"
	Backslash    Separator = "\\"
)

// opposite returns the separator that gets replaced when converting toward s.
func (s Separator) opposite() string {
	if s == Backslash {
		return string(ForwardSlash)
	}
	return string(Backslash)
}

// embedPattern matches markdown image embeds: ![alt](path).
// Non-greedy on both sides; nested brackets or parens inside alt text or the
// path are out of scope.
var embedPattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// EmbedLink is one located image embed inside document text.
type EmbedLink struct {
	FullMatch string // the complete ![alt](path) text
	AltText   string
	Path      string
}

// Result describes the outcome of one normalization pass.
type Result struct {
	OriginalContent string
	ModifiedContent string
	WasModified     bool
	RewriteCount    int // number of embed paths that were rewritten
}

// Normalizer rewrites embed-link path separators toward a target convention.
type Normalizer struct{}

// New creates a new Normalizer
func New() *Normalizer {
	return &Normalizer{}
}

// Scan locates every image embed in content, in document order.
func (n *Normalizer) Scan(content string) []EmbedLink {
	matches := embedPattern.FindAllStringSubmatch(content, -1)
	links := make([]EmbedLink, 0, len(matches))
	for _, m := range matches {
		links = append(links, EmbedLink{FullMatch: m[0], AltText: m[1], Path: m[2]})
	}
	return links
}

// RewritePath converts the separators in a single embed path toward target.
// Network paths (any "http" prefix) and absolute paths (leading "/") are
// returned unchanged.
func RewritePath(path string, target Separator) string {
	if strings.HasPrefix(path, "http") || strings.HasPrefix(path, "/") {
		return path
	}
	return strings.ReplaceAll(path, target.opposite(), string(target))
}

// Normalize rewrites every eligible embed path in content toward target.
// Substitutions are applied left to right; only the path portion of each
// match changes, never the alt text. The pass is idempotent: a path already
// using the target convention contains no non-target separator to replace.
func (n *Normalizer) Normalize(content string, target Separator) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	result.ModifiedContent = embedPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := embedPattern.FindStringSubmatch(match)
		path := sub[2]

		rewritten := RewritePath(path, target)
		if rewritten == path {
			return match
		}

		result.WasModified = true
		result.RewriteCount++

		// Only the first occurrence of the original path text within the
		// match is replaced.
		return strings.Replace(match, path, rewritten, 1)
	})

	return result
}
