// Package templates holds the fixed content written by the installer.
// All files are compiled into the binary via //go:embed and never change
// after process start.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed files
var files embed.FS

// Key identifies a template
type Key string

const (
	KeySharedScript  Key = "shared-script"
	KeyCursorRules   Key = "cursor-rules"
	KeyWindsurfRules Key = "windsurf-rules"
)

var sources = map[Key]string{
	KeySharedScript:  "userinput.py",
	KeyCursorRules:   "cursor_rules.mdc",
	KeyWindsurfRules: "windsurf_rules.md",
}

var contents = mustLoad()

func mustLoad() map[Key][]byte {
	loaded := make(map[Key][]byte, len(sources))
	for key, name := range sources {
		data, err := files.ReadFile(path.Join("files", name))
		if err != nil {
			panic(fmt.Sprintf("templates: missing embedded file %s: %v", name, err))
		}
		loaded[key] = data
	}
	return loaded
}

// ErrUnknownKey is returned when a template key is not in the store
var ErrUnknownKey = errors.New("unknown template")

// Get returns a copy of the template content for key
func Get(key Key) ([]byte, error) {
	data, ok := contents[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Frontmatter is the subset of rules document front matter the installer reports on.
// Cursor uses alwaysApply, Windsurf uses trigger.
type Frontmatter struct {
	Description string `yaml:"description"`
	AlwaysApply bool   `yaml:"alwaysApply"`
	Trigger     string `yaml:"trigger"`
}

// ParseFrontmatter decodes the YAML front matter of a rules template
func ParseFrontmatter(key Key) (*Frontmatter, error) {
	data, ok := contents[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	str := string(data)
	if !strings.HasPrefix(str, "---\n") {
		return nil, errors.New("no frontmatter found")
	}

	endIdx := strings.Index(str[4:], "\n---")
	if endIdx == -1 {
		return nil, errors.New("unclosed frontmatter")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(str[4:4+endIdx]), &fm); err != nil {
		return nil, fmt.Errorf("invalid YAML frontmatter: %w", err)
	}
	return &fm, nil
}
