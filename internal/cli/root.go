package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordvis",
	Short: "wordvis - word frequency explorer for transcripts",
	Long: `wordvis splits a transcript into fixed-size chunks and shows how often
selected words occur in each chunk, in the browser or in the terminal.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int("chunk-size", 0, "tokens per chunk (overrides CHUNK_SIZE)")
	rootCmd.PersistentFlags().String("stopwords", "", "TOML stopword overrides (overrides STOPWORDS_FILE)")

	serveCmd.Flags().String("port", "", "listen port (overrides API_PORT)")
	overviewCmd.Flags().IntP("limit", "n", 20, "number of words to print, 0 for all")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(overviewCmd)
}
