// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/sepsync/pkg/normalize"
)

// 🖥️ Separator convention names accepted for os_type
const (
	OSAuto    = "auto"
	OSWindows = "windows"
	OSMacOS   = "macos"
)

// 🔌 Parser is the interface for settings parsers
type Parser interface {
	// 📝 Parse parses the settings from bytes
	Parse(ctx context.Context, data []byte) (*Settings, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Settings represents the persisted user settings
type Settings struct {
	// OSType selects the separator convention: auto, windows or macos.
	OSType string `json:"os_type" yaml:"os_type"`

	// ExcludedFolders is a comma-separated list of vault-relative path
	// prefixes. Files under a matching prefix are never rewritten.
	ExcludedFolders string `json:"excluded_folders,omitempty" yaml:"excluded_folders,omitempty"`
}

// 🏭 Default returns the settings used when nothing is persisted
func Default() *Settings {
	return &Settings{
		OSType:          OSAuto,
		ExcludedFolders: "",
	}
}

// 🎯 Load loads settings from a file, merged key-by-key over defaults.
// A missing file is not an error: the defaults apply unchanged.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading settings")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no settings file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading settings file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	loaded, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing settings: %w", err)
	}

	cfg := Default().Merge(loaded)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating settings: %w", err)
	}

	return cfg, nil
}

// 🔀 Merge overlays loaded values onto s key-by-key. Empty loaded keys keep
// the value already in s.
func (s *Settings) Merge(loaded *Settings) *Settings {
	out := *s
	if loaded == nil {
		return &out
	}
	if loaded.OSType != "" {
		out.OSType = loaded.OSType
	}
	if loaded.ExcludedFolders != "" {
		out.ExcludedFolders = loaded.ExcludedFolders
	}
	return &out
}

// 🔍 Validate checks if the settings are valid
func (s *Settings) Validate() error {
	switch s.OSType {
	case OSAuto, OSWindows, OSMacOS:
		return nil
	case "":
		s.OSType = OSAuto
		return nil
	default:
		return errors.Errorf("os_type must be one of auto, windows, macos: %q", s.OSType)
	}
}

// 📋 ExcludedList splits the persisted comma-separated prefix list.
// Whitespace around entries is trimmed and empty entries are dropped.
func (s *Settings) ExcludedList() []string {
	if s.ExcludedFolders == "" {
		return nil
	}
	parts := strings.Split(s.ExcludedFolders, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// 🎯 TargetSeparator resolves the separator convention to write.
// windows → backslash, macos → forward slash, auto → follows the host OS.
func (s *Settings) TargetSeparator(hostIsWindows bool) normalize.Separator {
	switch s.OSType {
	case OSWindows:
		return normalize.Backslash
	case OSMacOS:
		return normalize.ForwardSlash
	default:
		if hostIsWindows {
			return normalize.Backslash
		}
		return normalize.ForwardSlash
	}
}

// 📝 String returns a string representation of the settings
func (s *Settings) String() string {
	return fmt.Sprintf("os_type=%s excluded_folders=%q", s.OSType, s.ExcludedFolders)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the settings from YAML bytes
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	var cfg Settings
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
