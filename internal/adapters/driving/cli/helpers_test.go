package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/storage/memory"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/services"
)

// setupTestServices wires the package-level services to in-memory
// fakes, bypassing initServices, and returns a cleanup func restoring
// the previous state.
func setupTestServices() func() {
	prevSettings := settingsService
	prevCatalog := catalogService
	prevAnswer := answerService
	prevConfig := configStore
	prevIndex := indexStore
	prevLLM := llmService
	prevPreRun := rootCmd.PersistentPreRunE

	store := memory.NewIndexStore()
	_ = store.Save(context.Background(), &domain.Index{
		Documents: []domain.Document{{Name: "edital-42.pdf", PageCount: 2}},
		Chunks: []domain.Chunk{
			{DocumentIndex: 0, Page: 1, Text: "Abertura da sessão: 10/03/2026 às 14:00 no Comprasnet."},
			{DocumentIndex: 0, Page: 2, Text: "Validade da proposta: 60 dias."},
		},
	})

	indexStore = store
	catalogService = services.NewCatalogService(store, nil, nil)
	answerService = services.NewAnswerService(catalogService, nil, "gpt-4.1-mini", 12)
	settingsService = nil
	configStore = nil
	llmService = nil
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error { return nil }

	return func() {
		settingsService = prevSettings
		catalogService = prevCatalog
		answerService = prevAnswer
		configStore = prevConfig
		indexStore = prevIndex
		llmService = prevLLM
		rootCmd.PersistentPreRunE = prevPreRun
	}
}
