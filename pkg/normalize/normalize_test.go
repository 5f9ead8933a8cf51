package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		target       Separator
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:         "backslash_to_forward",
			content:      `![cover](images\cover.png)`,
			target:       ForwardSlash,
			want:         `![cover](images/cover.png)`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "backslash_unchanged_for_backslash_target",
			content:      `![cover](images\cover.png)`,
			target:       Backslash,
			want:         `![cover](images\cover.png)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "forward_to_backslash",
			content:      `![cover](images/cover.png)`,
			target:       Backslash,
			want:         `![cover](images\cover.png)`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "http_path_untouched",
			content:      `![x](http://a.com/b\c.png)`,
			target:       ForwardSlash,
			want:         `![x](http://a.com/b\c.png)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "http_path_untouched_backslash_target",
			content:      `![x](http://a.com/b/c.png)`,
			target:       Backslash,
			want:         `![x](http://a.com/b/c.png)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "https_path_untouched",
			content:      `![x](https://a.com/b/c.png)`,
			target:       Backslash,
			want:         `![x](https://a.com/b/c.png)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "absolute_path_untouched",
			content:      `![abs](/usr/share/img.png)`,
			target:       Backslash,
			want:         `![abs](/usr/share/img.png)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "every_separator_replaced",
			content:      `![deep](a\b\c\d.png)`,
			target:       ForwardSlash,
			want:         `![deep](a/b/c/d.png)`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "multiple_embeds_left_to_right",
			content:      `start ![one](a\1.png) middle ![two](b\2.png) end`,
			target:       ForwardSlash,
			want:         `start ![one](a/1.png) middle ![two](b/2.png) end`,
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "mixed_embeds_only_eligible_counted",
			content:      `![a](x\y.png) ![b](http://h/p\q.png) ![c](done/ok.png)`,
			target:       ForwardSlash,
			want:         `![a](x/y.png) ![b](http://h/p\q.png) ![c](done/ok.png)`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "alt_text_never_rewritten",
			content:      `![alt\with\slashes](img\pic.png)`,
			target:       ForwardSlash,
			want:         `![alt\with\slashes](img/pic.png)`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "non_embed_link_ignored",
			content:      `[not an image](a\b.md)`,
			target:       ForwardSlash,
			want:         `[not an image](a\b.md)`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			target:       ForwardSlash,
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "no_embeds",
			content:      "plain text with a \\ and a / in it",
			target:       ForwardSlash,
			want:         "plain text with a \\ and a / in it",
			wantCount:    0,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			result := n.Normalize(tt.content, tt.target)

			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.OriginalContent)
			assert.Equal(t, tt.want, result.ModifiedContent)
			assert.Equal(t, tt.wantCount, result.RewriteCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestNormalizer_Normalize_Idempotent(t *testing.T) {
	contents := []string{
		`![cover](images\cover.png)`,
		`![a](x\y.png) text ![b](p/q.png)`,
		`![x](http://a.com/b\c.png)`,
		`![abs](/root\weird.png)`,
		`no embeds at all`,
	}

	for _, target := range []Separator{ForwardSlash, Backslash} {
		for _, content := range contents {
			n := New()
			once := n.Normalize(content, target)
			twice := n.Normalize(once.ModifiedContent, target)

			assert.Equal(t, once.ModifiedContent, twice.ModifiedContent,
				"normalize(%q, %q) must be idempotent", content, target)
			assert.False(t, twice.WasModified)
		}
	}
}

func TestNormalizer_Scan(t *testing.T) {
	n := New()
	links := n.Scan(`intro ![one](a\1.png) and ![two words](b/2.jpg)`)

	require.Len(t, links, 2)
	assert.Equal(t, `![one](a\1.png)`, links[0].FullMatch)
	assert.Equal(t, "one", links[0].AltText)
	assert.Equal(t, `a\1.png`, links[0].Path)
	assert.Equal(t, "two words", links[1].AltText)
	assert.Equal(t, "b/2.jpg", links[1].Path)
}

func TestRewritePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		target Separator
		want   string
	}{
		{"relative_backslash", `img\a.png`, ForwardSlash, "img/a.png"},
		{"relative_forward", "img/a.png", Backslash, `img\a.png`},
		{"already_target", "img/a.png", ForwardSlash, "img/a.png"},
		{"http_prefix", `http://x/y\z.png`, ForwardSlash, `http://x/y\z.png`},
		{"bare_http_prefix", `httpdir\a.png`, ForwardSlash, `httpdir\a.png`},
		{"absolute", "/img/a.png", Backslash, "/img/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewritePath(tt.path, tt.target))
		})
	}
}
