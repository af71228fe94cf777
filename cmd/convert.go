// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// open export → parse WXR → normalize paragraphs → convert to markdown →
// render front matter → write the content tree.
//
// A single post failing (unparseable date, missing document structure,
// conversion error) is logged and skipped; the rest of the export still
// converts.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wp2zola/core"
	"github.com/gaurav-prasanna/wp2zola/core/config"
	"github.com/gaurav-prasanna/wp2zola/core/fetch"
	"github.com/gaurav-prasanna/wp2zola/core/markdown"
	"github.com/gaurav-prasanna/wp2zola/core/normalize"
	"github.com/gaurav-prasanna/wp2zola/core/output"
	"github.com/gaurav-prasanna/wp2zola/core/render"
	"github.com/gaurav-prasanna/wp2zola/core/wxr"
)

// Flag variables.
var (
	flagOutputDir  string
	flagPaginateBy int
	flagBaseURL    string
	flagConfig     string
)

var convertCmd = &cobra.Command{
	Use:   "convert <export.xml>",
	Short: "Convert an export into a Zola content directory",
	Long: `Convert parses a WordPress XML export and writes a Zola content tree.
The export argument is a local file path or an http(s) URL.

Examples:
  wp2zola convert export.xml
  wp2zola convert export.xml --output_dir ./content --paginate_by 10
  wp2zola convert https://blog.example.com/export.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Content directory (default: ./content)")
	convertCmd.Flags().IntVar(&flagPaginateBy, "paginate_by", 0, "Posts per section page (default: 5)")
	convertCmd.Flags().StringVar(&flagBaseURL, "base_url", "", "Override the export's base site URL")
	convertCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file path")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	export, err := readExport(cmd, args[0])
	if err != nil {
		return err
	}

	baseURL := export.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	writer, err := output.New(cfg.OutputDir, render.NewSectionRenderer(cfg.PaginateBy).Render())
	if err != nil {
		return fmt.Errorf("initializing writer: %w", err)
	}

	written, failed := convertExport(
		export, baseURL,
		normalize.New(), markdown.New(), render.NewPageRenderer(),
		writer,
	)

	fmt.Fprintf(os.Stdout, "✓ %d pages, %d sections written to %s\n", written, writer.Sections(), writer.ContentDir)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d posts failed\n", failed)
	}
	return nil
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagPaginateBy > 0 {
		cfg.PaginateBy = flagPaginateBy
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg, nil
}

// readExport opens and parses the export document.
func readExport(cmd *cobra.Command, arg string) (*core.Export, error) {
	src, err := fetch.New().Open(cmd.Context(), arg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	export, err := wxr.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", arg, err)
	}
	return export, nil
}

// convertExport runs every published post through the pipeline.
// Returns how many pages were written and how many posts failed.
func convertExport(
	export *core.Export,
	baseURL string,
	normalizer core.Normalizer,
	converter core.Converter,
	renderer core.Renderer,
	writer *output.Writer,
) (written, failed int) {
	for _, post := range export.Posts {
		if post.Status != core.StatusPublish {
			slog.Debug("skipping unpublished item", "title", post.Title, "status", post.Status)
			continue
		}

		switch post.Type {
		case core.PostTypePost:
			path, err := convertPost(post, baseURL, normalizer, converter, renderer, writer)
			if err != nil {
				slog.Error("post failed", "title", post.Title, "error", err)
				failed++
				continue
			}
			slog.Info("post written", "title", post.Title, "path", path)
			written++
		case core.PostTypeAttachment:
			slog.Debug("ignoring attachment", "title", post.Title)
		default:
			slog.Debug("ignoring unknown post type", "title", post.Title)
		}
	}
	return written, failed
}

// convertPost runs a single post through normalize → convert → render → write.
func convertPost(
	post core.Post,
	baseURL string,
	normalizer core.Normalizer,
	converter core.Converter,
	renderer core.Renderer,
	writer *output.Writer,
) (string, error) {
	html, err := normalizer.Normalize(post.Content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	md, err := converter.Convert(html)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	page, err := renderer.Render(post, md)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	path, err := writer.WritePage(baseURL, post.Link, page)
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return path, nil
}
