// Package cli implements the command-line interface. It is also the
// composition root: services and adapters are wired here from the
// persisted settings before any command runs.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/ai"
	configfile "github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/config/file"
	pdfcpuext "github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/extractor/pdfcpu"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/extractor/pdftext"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/storage/indexfile"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driven/storage/sqlite"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/chunker"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driving"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/services"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

var verbose bool

// Wired services, available to every command after PersistentPreRunE.
var (
	settingsService driving.SettingsService
	catalogService  *services.CatalogService
	answerService   driving.AnswerService

	configStore driven.ConfigStore
	indexStore  driven.IndexStore
	llmService  driven.LLMService
)

var rootCmd = &cobra.Command{
	Use:   "sos-licitacoes",
	Short: "Question answering over Brazilian procurement notice PDFs",
	Long: `sos-licitacoes indexes edital PDFs into a local catalog and answers
questions about them with cited passages.

Answers are synthesised by a remote model when one is configured, and
degrade to a deterministic local summary when it is not.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initServices wires adapters and services from persisted settings.
// Remote reasoning failures are not fatal: the answer service degrades
// to local summaries.
func initServices() error {
	// .env is optional; env credentials are picked up by the settings
	// service when the config file has none.
	_ = godotenv.Load()

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	configStore = store

	settingsService = services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	switch settings.Storage.Backend {
	case domain.StorageBackendSQLite:
		indexStore, err = sqlite.NewStore(settings.Storage.Dir)
	default:
		indexStore, err = indexfile.NewStore(settings.Storage.Dir)
	}
	if err != nil {
		return fmt.Errorf("open index store: %w", err)
	}

	extractors := []driven.PageExtractor{pdftext.New(), pdfcpuext.New()}
	catalogService = services.NewCatalogService(
		indexStore,
		extractors,
		chunker.New(chunker.WithTargetSize(settings.ChunkSize)),
	)

	llmService, err = ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("Remote reasoning unavailable, answers will use local summaries: %v", err)
		llmService = nil
	}

	answerService = services.NewAnswerService(catalogService, llmService, settings.LLM.Model, settings.TopK)
	return nil
}

func closeServices() {
	if llmService != nil {
		llmService.Close() //nolint:errcheck
	}
	if indexStore != nil {
		indexStore.Close() //nolint:errcheck
	}
}
