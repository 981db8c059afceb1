package domain

import "strings"

// Category CSV columns and sentinel.
const (
	ColumnCategoryAnnotation = "Annotation"
	ColumnCategory           = "Category"

	// NoCategory marks an annotation without a broader category.
	NoCategory = "-"
)

// RootCategoryClass is the OWL class every category specialises.
const RootCategoryClass = "Categories"

// CategoryEntry links an annotation to its broader category.
type CategoryEntry struct {
	// Annotation is the raw annotation text.
	Annotation string

	// Category is the most specific category segment.
	Category string
}

// AnnotationClass returns the OWL class name of the annotation side.
func (c CategoryEntry) AnnotationClass() string {
	return NewAnnotation(c.Annotation).OntologyName()
}

// CategoryClass returns the OWL class name of the category side.
func (c CategoryEntry) CategoryClass() string {
	return NormalizeName(c.Category)
}

// ResolveCategory returns the most specific segment of a ';' separated
// category hierarchy. It reports false for blank values and the "-" sentinel.
func ResolveCategory(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == NoCategory {
		return "", false
	}
	segments := strings.Split(value, ";")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(segments[i])
		if segment != "" {
			return segment, segment != NoCategory
		}
	}
	return "", false
}
