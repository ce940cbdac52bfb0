// Package domain contains the core business types for doclens.
// Types here are plain data with no dependencies on adapters or
// infrastructure. They represent queries, filters, results, and
// suggestions as they flow through a search session.
package domain
