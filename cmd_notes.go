package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var notesWidth int

var notesCmd = &cobra.Command{
	Use:   "notes [name]",
	Short: "Print the site's explainer copy in the terminal",
	Long: `Renders one of the markdown copy blocks the site embeds (nits, science,
bit-depth, banding, histogram, transfer). Without a name it lists them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().IntVar(&notesWidth, "width", 80, "Wrap width")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	dir := cfg.Server.ContentDir
	if len(args) == 0 {
		files, err := filepath.Glob(filepath.Join(dir, "*.md"))
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(filepath.Base(f), ".md"))
		}
		return nil
	}

	name := filepath.Base(args[0])
	src, err := os.ReadFile(filepath.Join(dir, name+".md"))
	if err != nil {
		return fmt.Errorf("read notes %q: %w", name, err)
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(notesWidth))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(string(src))
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
