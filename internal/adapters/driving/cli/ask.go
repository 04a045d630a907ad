package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askLocal bool
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the indexed documents",
	Long: `Retrieves the most relevant indexed passages for the question and
synthesises an answer with citations.

With a configured remote model the answer is model-written; otherwise,
or with --local, a deterministic local summary is rendered from mined
facts (dates, platforms, deadlines, qualification documents).`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askLocal, "local", false, "skip the remote model and use the local summary")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ans := answerService.Answer(cmd.Context(), args[0], !askLocal)

	if askJSON {
		data, err := json.MarshalIndent(ans, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("# %s\n\n", ans.Title)
	cmd.Println(ans.Markdown)
	if len(ans.Sources) > 0 {
		cmd.Println("\nFontes:")
		for _, src := range ans.Sources {
			cmd.Printf("  - %s\n", src)
		}
	}
	return nil
}
