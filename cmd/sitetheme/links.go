package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sitetheme/internal/transition"
)

var linksOpts struct {
	host        string
	unsupported bool
}

var linksCmd = &cobra.Command{
	Use:   "links <file.html>...",
	Short: "Report which links get view transitions",
	Long: `Scan HTML pages and report, for every link, whether activating it would be
animated with a view transition or left to the browser.

Only same-host links to .html pages that don't open a new window are
animated, and only when the browser supports view transitions.

Examples:
  sitetheme links public/index.html public/about.html

  # As seen by a browser without view transitions
  sitetheme links --unsupported public/index.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().StringVar(&linksOpts.host, "host", "",
		"Host the pages are served from (default: [transition] host from config)")
	linksCmd.Flags().BoolVar(&linksOpts.unsupported, "unsupported", false,
		"Assume the browser has no view transitions")
}

// recordingTransition runs the update immediately and counts transitions.
type recordingTransition struct {
	started int
}

func (r *recordingTransition) StartViewTransition(update func() error) error {
	r.started++
	return update()
}

func runLinks(cmd *cobra.Command, args []string) error {
	host := linksOpts.host
	if host == "" {
		host = cfg.Transition.Host
	}

	var rec *recordingTransition
	var t transition.Transitioner
	if cfg.Transition.Enabled && !linksOpts.unsupported {
		rec = &recordingTransition{}
		t = rec
	}

	var visited string
	nav := transition.NavigatorFunc(func(href string) error {
		visited = href
		return nil
	})
	strategy := transition.Select(t, nav, host, logger)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "PAGE\tHREF\tHOST\tNAVIGATION\n")
	for _, path := range args {
		links, err := scanFile(path, host)
		if err != nil {
			return err
		}
		for _, link := range links {
			visited = ""
			prevented, err := transition.Click(strategy, link)
			if err != nil {
				return err
			}
			how := "default"
			if prevented && visited == link.Href {
				how = strategy.Name()
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", filepath.Base(path), link.Href, link.Hostname, how)
		}
	}

	if rec != nil {
		logger.Debug("scanned links", "strategy", strategy.Name(), "transitions", rec.started)
	}
	return nil
}

func scanFile(path, host string) ([]transition.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pageURL := "https://" + host + "/" + filepath.ToSlash(filepath.Base(path))
	links, err := transition.ScanLinks(f, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return links, nil
}
