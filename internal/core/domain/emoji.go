package domain

import "strings"

// Source column names of the emoji catalogue CSV.
const (
	ColumnUnicode     = "Unicode"
	ColumnGlyph       = "Emoji"
	ColumnDescription = "Description"
	ColumnYear        = "Year"
	ColumnNature      = "Nature"
	ColumnAnnotations = "Annotations"
)

// RootEmojiClass is the OWL class every emoji class specialises.
const RootEmojiClass = "Emoji"

// Row is one parsed CSV record keyed by column name.
type Row map[string]string

// Emoji represents one catalogue entry.
// Identity fields are set once at ingestion and never change; enrichment
// values (color, sentiment, usage) are computed from caches on read.
type Emoji struct {
	// Unicode holds one or more "U+XXXX" codepoints separated by spaces.
	Unicode string

	// Glyph is the rendered character sequence.
	Glyph string

	// Description is the free-text name, e.g. "grinning face".
	Description string

	// Year is the year the emoji was introduced.
	Year string

	// Nature is "emoji" or "text".
	Nature string

	// Annotations are the keywords attached to this emoji, in source order.
	Annotations []Annotation
}

// OntologyName returns the OWL class name of the emoji.
func (e Emoji) OntologyName() string {
	return NormalizeName(e.Description) + RootEmojiClass
}

// WebID returns the codepoints without their "U+" prefix joined by "-".
// "U+0023 U+20E3" becomes "0023-20E3".
func (e Emoji) WebID() string {
	codepoints := strings.Fields(e.Unicode)
	for i, cp := range codepoints {
		codepoints[i] = strings.TrimPrefix(cp, "U+")
	}
	return strings.Join(codepoints, "-")
}

// AnnotationTexts returns the raw text of each annotation in order.
func (e Emoji) AnnotationTexts() []string {
	texts := make([]string, len(e.Annotations))
	for i, a := range e.Annotations {
		texts[i] = a.Text
	}
	return texts
}

// RootAnnotationClass is the OWL class every annotation class specialises.
const RootAnnotationClass = "Annotations"

// Annotation is a keyword such as "face" or "smile".
// Two annotations are the same entity when their text is equal, so the
// struct is compared and keyed by value.
type Annotation struct {
	// Text is the trimmed annotation phrase with its case preserved.
	Text string
}

// NewAnnotation creates an annotation from raw text, trimming surrounding whitespace.
func NewAnnotation(text string) Annotation {
	return Annotation{Text: strings.TrimSpace(text)}
}

// OntologyName returns the OWL class name of the annotation.
func (a Annotation) OntologyName() string {
	return NormalizeName(a.Text) + "Annotation"
}

// ParseAnnotations splits a ';' separated annotation list.
// Blank segments are skipped; an empty list yields no annotations.
func ParseAnnotations(list string) []Annotation {
	var annotations []Annotation
	for _, part := range strings.Split(list, ";") {
		a := NewAnnotation(part)
		if a.Text == "" {
			continue
		}
		annotations = append(annotations, a)
	}
	return annotations
}

// Catalogue is the result of ingesting the emoji source.
type Catalogue struct {
	// Emojis are in source row order.
	Emojis []Emoji

	// Annotations are deduplicated by text, in order of first appearance.
	Annotations []Annotation
}
