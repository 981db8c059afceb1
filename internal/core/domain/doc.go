// Package domain defines the core business entities for emojiont.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Emoji: A catalogue entry with its codepoints, glyph and annotations
//   - Annotation: A keyword shared between emoji, identified by its text
//   - SentimentItem: Occurrence statistics for one emoji
//   - OWLProperty: A typed data property rendered into the ontology
//   - CategoryEntry: An annotation to category mapping
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
