package domain

// PropertyType is the datatype of an OWL data property value.
type PropertyType string

// Supported data property types, keyed by their datatype IRI.
const (
	// PropertyInteger is an xsd:integer literal.
	PropertyInteger PropertyType = "http://www.w3.org/2001/XMLSchema#integer"

	// PropertyString is an rdf:PlainLiteral literal.
	PropertyString PropertyType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral"

	// PropertyDouble is an xsd:double literal.
	PropertyDouble PropertyType = "http://www.w3.org/2001/XMLSchema#double"
)

// IRI returns the datatype IRI.
func (t PropertyType) IRI() string {
	return string(t)
}

// Emoji data property names.
const (
	PropUnicode          = "hasUnicode"
	PropGlyph            = "hasEmojiGlyph"
	PropDescription      = "hasDescription"
	PropYear             = "hasYear"
	PropNature           = "hasNature"
	PropUsageNumber      = "hasUsageNumber"
	PropUsagePercentage  = "hasUsagePercentage"
	PropSentiment        = "hasSentiment"
	PropAverageSentiment = "hasAverageSentiment"
)

// OWLProperty is a single data property assertion on an OWL class.
// It carries no behaviour beyond serialization.
type OWLProperty struct {
	// Name is the data property name, e.g. "hasUnicode".
	Name string

	// Value is the literal, already formatted.
	Value string

	// ClassName is the class the property is asserted on.
	ClassName string

	// Type is the literal datatype.
	Type PropertyType
}

// EmojiPropertyDescriptors lists the data properties every emoji carries,
// in the order they are rendered and reported.
func EmojiPropertyDescriptors() []OWLProperty {
	return []OWLProperty{
		{Name: PropUnicode, ClassName: RootEmojiClass, Type: PropertyString},
		{Name: PropGlyph, ClassName: RootEmojiClass, Type: PropertyString},
		{Name: PropDescription, ClassName: RootEmojiClass, Type: PropertyString},
		{Name: PropYear, ClassName: RootEmojiClass, Type: PropertyInteger},
		{Name: PropNature, ClassName: RootEmojiClass, Type: PropertyString},
		{Name: PropUsageNumber, ClassName: RootEmojiClass, Type: PropertyInteger},
		{Name: PropUsagePercentage, ClassName: RootEmojiClass, Type: PropertyDouble},
		{Name: PropSentiment, ClassName: RootEmojiClass, Type: PropertyDouble},
		{Name: PropAverageSentiment, ClassName: RootEmojiClass, Type: PropertyDouble},
	}
}
