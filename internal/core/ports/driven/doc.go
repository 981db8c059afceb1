// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SourceReader: Reads the catalogue, category and sentiment files
//   - ColorCacheStore: Persists glyph color classifications
//   - UsageCacheStore: Persists glyph usage counts
//   - TemplateSource: Provides the OWL document template
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These are only needed by the commands that refresh caches:
//
//   - ColorSampler: Samples the dominant color of a glyph. Needed by the color analysis batch.
//   - UsageProvider: Fetches the usage statistics page. Needed by the usage refresh.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driven
