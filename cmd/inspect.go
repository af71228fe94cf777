// Package cmd — inspect command.
// Prints a JSON inventory of an export without converting anything,
// useful for checking what a conversion would pick up.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wp2zola/core/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <export.xml>",
	Short: "Print a JSON inventory of an export",
	Long: `Inspect parses a WordPress XML export and prints a JSON summary:
per-item status, post type, and structural counts (words, links, images,
headings), plus totals by status.

Examples:
  wp2zola inspect export.xml
  wp2zola inspect https://blog.example.com/export.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	export, err := readExport(cmd, args[0])
	if err != nil {
		return err
	}

	data, err := render.NewJSONRenderer().Render(export)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
