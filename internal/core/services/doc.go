// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline reads the emoji catalogue, enriches every emoji from the
// color, sentiment and usage caches through an Enricher, and serializes
// the result as an OWL/XML ontology or a CSV report.
package services
