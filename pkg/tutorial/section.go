// Package tutorial holds the Weave Evaluations tutorial: its fixed sections,
// the example snippets they reference, and the pagination controller that
// every display surface (terminal or browser) drives.
//
// Nothing in this package renders anything. Surfaces implement Display and
// SnippetPanel and call into Viewer and Presenter from their own event loops.
package tutorial

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyStore  = errors.New("tutorial has no sections")
	ErrDuplicateID = errors.New("duplicate section id")
)

// ActionKind identifies what an interactive control on a section does.
type ActionKind string

const (
	ActionSnippet  ActionKind = "snippet"  // Target is a snippet key
	ActionLink     ActionKind = "link"     // Target is an external URL
	ActionRestart  ActionKind = "restart"  // Back to the first section
	ActionDownload ActionKind = "download" // Export the summary
)

// Action is a button attached to a section.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Label  string     `json:"label"`
	Target string     `json:"target,omitempty"`
}

// Section is one page of tutorial content.
type Section struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"-"` // HTML fragment, never interpreted here
	Actions []Action `json:"actions,omitempty"`
}

// Store is the ordered, immutable list of sections. Order is navigation order.
type Store struct {
	sections []Section
	index    map[string]int
}

// NewStore validates and copies sections into a Store.
func NewStore(sections []Section) (*Store, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyStore
	}

	s := &Store{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	for i, sec := range sections {
		if _, dup := s.index[sec.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, sec.ID)
		}
		s.index[sec.ID] = i
		sec.Actions = append([]Action(nil), sec.Actions...)
		s.sections[i] = sec
	}
	return s, nil
}

// MustNewStore is NewStore for built-in content; it panics on invalid input.
func MustNewStore(sections []Section) *Store {
	s, err := NewStore(sections)
	if err != nil {
		panic(err)
	}
	return s
}

// Count returns the number of sections.
func (s *Store) Count() int {
	return len(s.sections)
}

// SectionAt returns the section at index. The index must be in range;
// Viewer is the only caller that produces indices and it validates them.
func (s *Store) SectionAt(index int) Section {
	return s.sections[index]
}

// IndexOf returns the position of the section with the given id.
func (s *Store) IndexOf(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Sections returns a copy of all sections in order.
func (s *Store) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}
