// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The catalog service owns ingestion and the durable record, the
// answer service owns retrieval and synthesis, and the settings
// service owns configuration. Ranking and fact mining are internal
// helpers of the answer path.
package services
