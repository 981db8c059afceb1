package driving

import "context"

// OntologyGenerator renders the enriched catalogue as an OWL/XML document.
type OntologyGenerator interface {
	// GenerateOWL returns the complete ontology document.
	GenerateOWL(ctx context.Context) (string, error)
}

// ReportGenerator renders the enriched catalogue as a CSV report.
type ReportGenerator interface {
	// GenerateCSV returns the report with its header row.
	GenerateCSV(ctx context.Context) (string, error)
}
