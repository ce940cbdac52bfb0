// Package driven defines the outbound ports of the core.
// Adapters (HTTP backend client, storage, config files) implement these
// interfaces; the core never touches infrastructure directly.
package driven
