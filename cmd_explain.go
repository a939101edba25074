package main

import (
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LianHaeming/raw2hdr-site/tui"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Walk through the RAW to HDR pipeline in the terminal",
	Long: `Opens the pipeline explainer as a terminal overlay.

Keys: →/l/n/space next stage, ←/h/p previous, r restart, q/esc close.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noise := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		return tui.Run(noise, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	},
}
