/*
Package ports defines the driven ports (interfaces) for the Marquee engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various pattern sources and letting adapters (HTTP, MCP,
console) depend on behavior rather than concrete types.

# Key Interfaces

  - QueryEngine: Resolves natural-language queries and renders responses.
  - PatternSource: Supplies pattern cards (e.g., from Loam or Memory).
  - Watchable: Optional hot-reload signaling for pattern sources.
*/
package ports
