package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Eligible(t *testing.T) {
	tests := []struct {
		name     string
		excluded []string
		file     File
		want     bool
	}{
		{
			name: "plain_markdown_file",
			file: NewFile("notes/today.md"),
			want: true,
		},
		{
			name: "root_level_markdown_file",
			file: NewFile("inbox.md"),
			want: true,
		},
		{
			name: "wrong_extension",
			file: NewFile("images/cover.png"),
			want: false,
		},
		{
			name: "uppercase_extension_rejected",
			file: NewFile("notes/LOUD.MD"),
			want: false,
		},
		{
			name: "no_extension",
			file: NewFile("LICENSE"),
			want: false,
		},
		{
			name:     "excluded_prefix",
			excluded: []string{"templates/"},
			file:     NewFile("templates/daily.md"),
			want:     false,
		},
		{
			name:     "excluded_prefix_nested",
			excluded: []string{"templates/"},
			file:     NewFile("templates/deep/nested.md"),
			want:     false,
		},
		{
			name:     "not_under_excluded_prefix",
			excluded: []string{"templates/"},
			file:     NewFile("notes/templates.md"),
			want:     true,
		},
		{
			name:     "partial_segment_prefix_also_excludes",
			excluded: []string{"ex/te"},
			file:     NewFile("ex/text/file.md"),
			want:     false,
		},
		{
			name:     "second_prefix_matches",
			excluded: []string{"a/", "b/"},
			file:     NewFile("b/note.md"),
			want:     false,
		},
		{
			name:     "empty_prefix_excludes_nothing",
			excluded: []string{""},
			file:     NewFile("notes/today.md"),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.excluded)
			assert.Equal(t, tt.want, f.Eligible(tt.file))
		})
	}
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantExt string
	}{
		{"markdown", "notes/today.md", "md"},
		{"nested_dots", "archive/report.v2.md", "md"},
		{"no_extension", "LICENSE", ""},
		{"trailing_dot", "weird.", ""},
		{"hidden_file", ".gitignore", "gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFile(tt.path)
			assert.Equal(t, tt.path, f.Path)
			assert.Equal(t, tt.wantExt, f.Extension)
		})
	}
}
