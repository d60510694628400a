package transition

import (
	"fmt"
	"io"
	"net/url"

	"golang.org/x/net/html"
)

// ScanLinks returns every anchor with an href in the HTML read from r.
// Hostnames are resolved against pageURL the way a browser resolves them, so
// relative links get the page's own host.
func ScanLinks(r io.Reader, pageURL string) ([]Link, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []Link
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if link, ok := anchorLink(n, base); ok {
				links = append(links, link)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

func anchorLink(n *html.Node, base *url.URL) (Link, bool) {
	var link Link
	hasHref := false
	for _, a := range n.Attr {
		switch a.Key {
		case "href":
			link.Href = a.Val
			hasHref = true
		case "target":
			link.Target = a.Val
		}
	}
	if !hasHref {
		return link, false
	}

	if ref, err := url.Parse(link.Href); err == nil {
		link.Hostname = base.ResolveReference(ref).Hostname()
	}
	return link, true
}
