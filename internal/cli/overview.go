package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"wordvis/internal/indexer"
)

var overviewCmd = &cobra.Command{
	Use:   "overview [transcript]",
	Short: "Print the most frequent words",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		setupLogging(cfg, cmd.ErrOrStderr())

		ix, err := buildIndex(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		printOverview(cmd.OutOrStdout(), ix, limit)
		return nil
	},
}

func printOverview(w io.Writer, ix *indexer.Index, limit int) {
	rows := ix.Overview()
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WORD", "COUNT")
	for _, r := range rows {
		t.Row(r.Word, strconv.Itoa(r.Count))
	}

	stats := ix.Stats()
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d tokens, %d chunks of %d, %d distinct words\n",
		stats.Tokens, stats.ChunkCount, stats.ChunkSize, stats.Vocabulary)
}
