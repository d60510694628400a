package transition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	visited []string
}

func (r *recordingNavigator) Navigate(href string) error {
	r.visited = append(r.visited, href)
	return nil
}

type fakeTransitioner struct {
	started int
}

func (f *fakeTransitioner) StartViewTransition(update func() error) error {
	f.started++
	return update()
}

func TestSelect_NoCapabilityUsesPlain(t *testing.T) {
	nav := &recordingNavigator{}
	s := Select(nil, nav, "example.com", nil)
	assert.Equal(t, "plain", s.Name())

	link := Link{Href: "about.html", Hostname: "example.com"}
	prevented, err := Click(s, link)
	require.NoError(t, err)
	assert.False(t, prevented)
	assert.Empty(t, nav.visited, "plain navigation is left to the browser")
}

func TestSelect_WithCapabilityUsesEnhanced(t *testing.T) {
	nav := &recordingNavigator{}
	tr := &fakeTransitioner{}
	s := Select(tr, nav, "example.com", nil)
	assert.Equal(t, "view-transition", s.Name())

	prevented, err := Click(s, Link{Href: "about.html", Hostname: "example.com"})
	require.NoError(t, err)
	assert.True(t, prevented)
	assert.Equal(t, 1, tr.started)
	assert.Equal(t, []string{"about.html"}, nav.visited)
}

func TestEnhanced_Intercepts(t *testing.T) {
	s := Select(&fakeTransitioner{}, &recordingNavigator{}, "example.com", nil)

	tests := []struct {
		name     string
		link     Link
		expected bool
	}{
		{"relative_page", Link{Href: "projects.html", Hostname: "example.com"}, true},
		{"nested_page", Link{Href: "/blog/post.html", Hostname: "example.com"}, true},
		{"new_tab", Link{Href: "projects.html", Target: "_blank", Hostname: "example.com"}, false},
		{"other_host", Link{Href: "https://other.org/a.html", Hostname: "other.org"}, false},
		{"not_a_page", Link{Href: "resume.pdf", Hostname: "example.com"}, false},
		{"fragment", Link{Href: "#top.html", Hostname: "example.com"}, false},
		{"mailto", Link{Href: "mailto:me@example.com?subject=a.html", Hostname: "example.com"}, false},
		{"empty", Link{Href: "", Hostname: "example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Intercepts(tt.link))
		})
	}
}

func TestPlain_FollowNavigatesDirectly(t *testing.T) {
	nav := &recordingNavigator{}
	s := Select(nil, nav, "example.com", nil)
	require.NoError(t, s.Follow("index.html"))
	assert.Equal(t, []string{"index.html"}, nav.visited)
}

func TestEnhanced_PropagatesNavigationError(t *testing.T) {
	boom := errors.New("boom")
	nav := NavigatorFunc(func(string) error { return boom })
	s := Select(&fakeTransitioner{}, nav, "example.com", nil)

	prevented, err := Click(s, Link{Href: "a.html", Hostname: "example.com"})
	assert.True(t, prevented)
	assert.ErrorIs(t, err, boom)
}
