// Package style holds the destinations a theme is written into.
//
// A Sink is the page's live set of style variables. Writes take effect
// immediately and there is no teardown, so tests and the terminal preview use
// MemorySink while the CLI renders a stylesheet with CSSWriter.
package style

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Sink receives style variable assignments.
type Sink interface {
	SetProperty(name, value string)
}

// Property is a single variable assignment.
type Property struct {
	Name  string
	Value string
}

// MemorySink keeps the latest value of every variable, in first-write order.
type MemorySink struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string
	writes int
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]string)}
}

// SetProperty implements Sink.
func (s *MemorySink) SetProperty(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
	s.writes++
}

// Get returns the current value of name.
func (s *MemorySink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Properties returns every variable in first-write order.
func (s *MemorySink) Properties() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	props := make([]Property, 0, len(s.order))
	for _, name := range s.order {
		props = append(props, Property{Name: name, Value: s.values[name]})
	}
	return props
}

// Writes returns how many assignments the sink has received.
func (s *MemorySink) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// CSSWriter collects assignments and renders them as one CSS rule.
type CSSWriter struct {
	Selector string
	mem      *MemorySink
}

// NewCSSWriter creates a writer for selector (":root" if empty).
func NewCSSWriter(selector string) *CSSWriter {
	if selector == "" {
		selector = ":root"
	}
	return &CSSWriter{Selector: selector, mem: NewMemorySink()}
}

// SetProperty implements Sink.
func (c *CSSWriter) SetProperty(name, value string) {
	c.mem.SetProperty(name, value)
}

// WriteTo writes the rule to w.
func (c *CSSWriter) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(c.Selector)
	sb.WriteString(" {\n")
	for _, p := range c.mem.Properties() {
		fmt.Fprintf(&sb, "  %s: %s;\n", p.Name, p.Value)
	}
	sb.WriteString("}\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Names returns the variable names written so far, sorted.
func (c *CSSWriter) Names() []string {
	props := c.mem.Properties()
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}
