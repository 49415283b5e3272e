package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wordvis/internal/chart"
	"wordvis/internal/tui"
)

const tuiLogFile = "wordvis-tui.log"

var tuiCmd = &cobra.Command{
	Use:   "tui [transcript]",
	Short: "Explore the transcript in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		// The screen belongs to bubbletea; logs go to a file.
		f, err := tea.LogToFile(tuiLogFile, "wordvis")
		if err != nil {
			return err
		}
		defer f.Close()
		setupLogging(cfg, f)

		ix, err := buildIndex(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.New(ix, chart.DefaultTheme()), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
