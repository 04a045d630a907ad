package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [pdf-path]",
	Short: "Index a procurement notice PDF",
	Long: `Extracts per-page text from the PDF, splits it into paragraph-aligned
chunks and appends it to the local catalog.

Two extraction backends are tried in order; the document is rejected
only when both fail or when no page has readable text.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	result, err := catalogService.IndexDocument(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDocument) {
			return fmt.Errorf("no readable text in %s (scanned image PDF?): %w", args[0], err)
		}
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %s: %d pages, %d chunks\n", result.Name, result.PageCount, result.ChunkCount)
	return nil
}
