// Package transition animates same-site page navigation when the browser
// offers a page-transition capability, and leaves navigation alone when it
// does not. The choice is made once, by Select.
package transition

import (
	"log/slog"
	"strings"
)

// PageExtension is the suffix of links that are candidates for animation.
const PageExtension = ".html"

// Link is an anchor on the page.
type Link struct {
	Href     string // raw href attribute
	Target   string // target attribute
	Hostname string // host the href resolves to
}

// Navigator performs a navigation.
type Navigator interface {
	Navigate(href string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(href string) error

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(href string) error {
	return f(href)
}

// Transitioner is the page-transition capability. It runs update inside an
// animated transition.
type Transitioner interface {
	StartViewTransition(update func() error) error
}

// Strategy decides how link activation is handled.
type Strategy interface {
	// Name identifies the strategy.
	Name() string

	// Intercepts reports whether activation of link is taken over.
	Intercepts(link Link) bool

	// Follow navigates to href.
	Follow(href string) error
}

// Select picks the strategy for the page. With a nil transitioner the plain
// strategy is used and navigation is never intercepted.
func Select(t Transitioner, nav Navigator, host string, logger *slog.Logger) Strategy {
	if logger == nil {
		logger = slog.Default()
	}
	if t == nil {
		logger.Info("view transitions not supported, using plain navigation")
		return plainStrategy{nav: nav}
	}
	return enhancedStrategy{transitioner: t, nav: nav, host: host}
}

// Click handles activation of link. It returns true when the default
// navigation was suppressed and performed through the strategy instead.
func Click(s Strategy, link Link) (prevented bool, err error) {
	if !s.Intercepts(link) {
		return false, nil
	}
	return true, s.Follow(link.Href)
}

type plainStrategy struct {
	nav Navigator
}

func (plainStrategy) Name() string { return "plain" }

func (plainStrategy) Intercepts(Link) bool { return false }

func (p plainStrategy) Follow(href string) error {
	return p.nav.Navigate(href)
}

type enhancedStrategy struct {
	transitioner Transitioner
	nav          Navigator
	host         string
}

func (enhancedStrategy) Name() string { return "view-transition" }

func (e enhancedStrategy) Intercepts(link Link) bool {
	if !strings.HasSuffix(link.Href, PageExtension) {
		return false
	}
	if link.Target == "_blank" || link.Hostname != e.host {
		return false
	}
	if link.Href == "" || strings.HasPrefix(link.Href, "#") || strings.HasPrefix(link.Href, "mailto:") {
		return false
	}
	return true
}

func (e enhancedStrategy) Follow(href string) error {
	return e.transitioner.StartViewTransition(func() error {
		return e.nav.Navigate(href)
	})
}
