package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the indexed catalog",
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents",
	RunE:  runDocumentList,
}

var documentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all documents from the catalog",
	RunE:  runDocumentClear,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentClearCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	docs, err := catalogService.ListDocuments(cmd.Context())
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		cmd.Println("No documents indexed.")
		return nil
	}

	cmd.Println("Indexed documents:")
	for i, doc := range docs {
		cmd.Printf("  [%d] %s (%d chunks)\n", i+1, doc.Name, doc.ChunkCount)
	}
	return nil
}

func runDocumentClear(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.ClearIndex(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Catalog cleared.")
	return nil
}
