// Package driving defines the inbound ports of the core.
// External actors (CLI, TUI, MCP server) drive the application
// exclusively through these interfaces.
package driving
