// Package toggle implements the light/dark switch. It is independent of the
// theme picker: it only sets a mode attribute on the document and never
// touches the colour variables.
package toggle

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmylchreest/sitetheme/internal/store"
)

// StorageKey is where the mode is persisted. It is deliberately distinct
// from the picker's preset key.
const StorageKey = "toggleMode"

// DefaultAttribute is the document attribute carrying the mode.
const DefaultAttribute = "data-theme"

// Mode is the binary display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode reads a stored or attribute value. Anything but "dark" is light.
func ParseMode(s string) Mode {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Label returns the button text and accessibility label for mode. The button
// always offers the mode the page is not in.
func (m Mode) Label() (text, ariaLabel string) {
	if m == Dark {
		return "☀️ Light", "Switch to light mode"
	}
	return "🌙 Dark", "Switch to dark mode"
}

// Document is the element the mode attribute is set on.
type Document interface {
	Attribute(name string) string
	SetAttribute(name, value string)
}

// Button is the toggle control.
type Button interface {
	SetText(text string)
	SetAttribute(name, value string)
}

// Controller owns the mode attribute and the button label.
type Controller struct {
	storage   store.Storage
	doc       Document
	button    Button
	attribute string
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithAttribute sets the document attribute name.
func WithAttribute(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.attribute = name
		}
	}
}

// New creates a Controller. button may be nil, in which case only the
// attribute is maintained.
func New(storage store.Storage, doc Document, button Button, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		storage:   storage,
		doc:       doc,
		button:    button,
		attribute: DefaultAttribute,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load applies the persisted mode (light if none) to the document and label.
func (c *Controller) Load() Mode {
	stored, _ := c.storage.Get(StorageKey)
	mode := ParseMode(stored)
	c.doc.SetAttribute(c.attribute, string(mode))
	c.updateButton(mode)
	return mode
}

// Mode returns the mode currently set on the document.
func (c *Controller) Mode() Mode {
	return ParseMode(c.doc.Attribute(c.attribute))
}

// Toggle flips the document mode, persists it and updates the label.
func (c *Controller) Toggle() (Mode, error) {
	next := c.Mode().Flip()
	c.doc.SetAttribute(c.attribute, string(next))
	c.updateButton(next)

	if err := c.storage.Set(StorageKey, string(next)); err != nil {
		return next, fmt.Errorf("save mode: %w", err)
	}
	c.logger.Debug("toggled mode", "mode", next)
	return next, nil
}

func (c *Controller) updateButton(mode Mode) {
	if c.button == nil {
		return
	}
	text, aria := mode.Label()
	c.button.SetText(text)
	c.button.SetAttribute("aria-label", aria)
}

// MemoryDocument is an in-memory Document.
type MemoryDocument struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewMemoryDocument returns an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{attrs: make(map[string]string)}
}

// Attribute implements Document.
func (d *MemoryDocument) Attribute(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attrs[name]
}

// SetAttribute implements Document.
func (d *MemoryDocument) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
}

// MemoryButton is an in-memory Button.
type MemoryButton struct {
	Text  string
	Attrs map[string]string
}

// SetText implements Button.
func (b *MemoryButton) SetText(text string) {
	b.Text = text
}

// SetAttribute implements Button.
func (b *MemoryButton) SetAttribute(name, value string) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]string)
	}
	b.Attrs[name] = value
}
