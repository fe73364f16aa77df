package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ovrica/sget/internal/config"
	"github.com/ovrica/sget/internal/media"
	"github.com/ovrica/sget/internal/platform"
	"github.com/ovrica/sget/internal/upstream"
	"github.com/ovrica/sget/internal/version"
)

var (
	jsonOutput bool
	useBrowser bool
)

var rootCmd = &cobra.Command{
	Use:     "sget [url]",
	Short:   "Resolve social media links into direct download URLs",
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		if err := runFetch(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	rootCmd.Flags().BoolVar(&useBrowser, "browser", false, "fall back to browser sniffing when the API has nothing")
}

func Execute() error {
	return rootCmd.Execute()
}

func runFetch(rawURL string) error {
	cfg := config.LoadOrDefault()

	p := platform.Match(rawURL)
	if p == nil {
		return fmt.Errorf("no supported platform matches: %s", rawURL)
	}
	if err := p.Validate(rawURL); err != nil {
		return err
	}

	client := upstream.New(cfg)
	ctx := context.Background()

	// Share links must be expanded before the upstream sees them
	if tw, ok := p.(*platform.TwitterPlatform); ok && tw.NeedsResolve(rawURL) {
		rawURL = client.ResolveShortURL(ctx, rawURL)
	}

	fallback := useBrowser || cfg.BrowserFallback

	if jsonOutput {
		result, err := resolve(ctx, client, p, rawURL, fallback)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	result, err := runFetchWithSpinner(ctx, client, p, rawURL, fallback)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

// resolve runs the full fetch-then-normalize flow for one URL
func resolve(ctx context.Context, client *upstream.Client, p platform.Platform, rawURL string, fallback bool) (*media.Result, error) {
	raw, err := client.Fetch(ctx, p, rawURL)
	if err != nil && fallback {
		if sniffed, serr := upstream.NewSniffer(false).Sniff(rawURL); serr == nil {
			raw, err = sniffed, nil
		}
	}
	if err != nil {
		return nil, err
	}

	result := media.Normalize(raw, p.Profile())
	if result == nil {
		return nil, fmt.Errorf("media found but no download URLs available")
	}
	return result, nil
}

func printResult(r *media.Result) {
	titleColor := color.New(color.FgCyan, color.Bold)
	urlColor := color.New(color.Faint)

	titleColor.Printf("  %s\n", r.Title)
	if r.Author != "" {
		fmt.Printf("  by %s\n", r.Author)
	}
	if r.Duration != "" {
		fmt.Printf("  duration: %s\n", r.Duration)
	}
	fmt.Println()

	for i, d := range r.Downloads {
		fmt.Printf("  [%d] %s\n", i+1, d.Text)
		urlColor.Printf("      %s\n", d.URL)
	}
}
