// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): PDF extraction backends, the durable
// index record, remote reasoning and configuration.
package driven
