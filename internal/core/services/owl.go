package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// Ensure OntologyService implements the interface.
var _ driving.OntologyGenerator = (*OntologyService)(nil)

// Template placeholder tokens.
const (
	TokenCategories         = "%%%AnnotationCategories%%%"
	TokenColors             = "%%%Colors%%%"
	TokenDataProps          = "%%%DataProps%%%"
	TokenAnnotations        = "%%%Annotations%%%"
	TokenEmojis             = "%%%Emojis%%%"
	TokenCategorySubclasses = "%%%AnnotationCategoriesSubclasses%%%"
)

// indentUnit is one level of fragment nesting.
const indentUnit = "    "

// OntologyFragments holds the generated text for each template token.
type OntologyFragments struct {
	Categories         string
	Colors             string
	DataProps          string
	Annotations        string
	Emojis             string
	CategorySubclasses string
}

// OntologyService renders the enriched catalogue as OWL/XML.
type OntologyService struct {
	catalogue    CatalogueLoader
	enricher     *Enricher
	template     driven.TemplateSource
	reader       driven.SourceReader
	categoryPath string
}

// NewOntologyService creates a new ontology service.
// categoryPath may be empty, in which case no categories are rendered.
func NewOntologyService(
	catalogue CatalogueLoader,
	enricher *Enricher,
	template driven.TemplateSource,
	reader driven.SourceReader,
	categoryPath string,
) *OntologyService {
	return &OntologyService{
		catalogue:    catalogue,
		enricher:     enricher,
		template:     template,
		reader:       reader,
		categoryPath: categoryPath,
	}
}

// GenerateOWL builds the complete ontology document.
func (s *OntologyService) GenerateOWL(ctx context.Context) (string, error) {
	catalogue, err := s.catalogue.Load(ctx)
	if err != nil {
		return "", err
	}
	taxonomy, err := LoadCategoryTaxonomy(ctx, s.reader, s.categoryPath)
	if err != nil {
		return "", err
	}
	tmpl, err := s.template.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load template: %w", err)
	}

	logger.Section("Ontology")
	emojis := make([]string, 0, len(catalogue.Emojis))
	for _, emoji := range catalogue.Emojis {
		block, err := s.renderEnrichedEmoji(emoji)
		if err != nil {
			return "", err
		}
		emojis = append(emojis, block)
	}

	fragments := OntologyFragments{
		Categories:         RenderCategoryDeclarations(taxonomy.Categories()),
		Colors:             RenderColors(domain.Palette()),
		DataProps:          RenderPropertyDescriptors(domain.EmojiPropertyDescriptors()),
		Annotations:        RenderAnnotations(catalogue.Annotations),
		Emojis:             strings.Join(emojis, "\n"),
		CategorySubclasses: RenderCategorySubclasses(taxonomy.Entries()),
	}
	logger.Info("rendered %d emoji, %d annotations, %d category links",
		len(catalogue.Emojis), len(catalogue.Annotations), len(taxonomy.Entries()))

	return FillTemplate(tmpl, fragments), nil
}

func (s *OntologyService) renderEnrichedEmoji(emoji domain.Emoji) (string, error) {
	props, err := s.enricher.Properties(emoji)
	if err != nil {
		return "", err
	}
	color, err := s.enricher.Color(emoji)
	if err != nil {
		return "", err
	}
	return RenderEmoji(emoji, props, color), nil
}

// tokenPattern matches a placeholder token together with the indentation before it.
var tokenPattern = regexp.MustCompile(`(?m)^([ \t]*)(%%%[A-Za-z]+%%%)`)

// FillTemplate replaces each token with its fragment. A token that starts a
// line has every fragment line indented to the token's column. Unknown
// tokens are left in place.
func FillTemplate(tmpl string, f OntologyFragments) string {
	values := map[string]string{
		TokenCategories:         f.Categories,
		TokenColors:             f.Colors,
		TokenDataProps:          f.DataProps,
		TokenAnnotations:        f.Annotations,
		TokenEmojis:             f.Emojis,
		TokenCategorySubclasses: f.CategorySubclasses,
	}

	out := tokenPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		parts := tokenPattern.FindStringSubmatch(match)
		fragment, ok := values[parts[2]]
		if !ok {
			return match
		}
		return indentLines(fragment, parts[1])
	})

	// Tokens that do not start a line are replaced verbatim.
	for token, fragment := range values {
		out = strings.ReplaceAll(out, token, fragment)
	}
	return out
}

// RenderPropertyDeclaration renders the data property declaration of p.
func RenderPropertyDeclaration(p domain.OWLProperty) string {
	return element("Declaration",
		emptyElement("DataProperty", "#"+p.Name),
	)
}

// RenderPropertyDescriptors declares each distinct property name once, in order.
func RenderPropertyDescriptors(props []domain.OWLProperty) string {
	var blocks []string
	seen := make(map[string]struct{})
	for _, p := range props {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		blocks = append(blocks, RenderPropertyDeclaration(p))
	}
	return strings.Join(blocks, "\n")
}

// RenderPropertyAssertion renders p as a DataHasValue restriction on its class.
func RenderPropertyAssertion(p domain.OWLProperty) string {
	literal := fmt.Sprintf(`<Literal datatypeIRI="%s">%s</Literal>`, escapeXML(p.Type.IRI()), escapeXML(p.Value))
	return element("SubClassOf",
		classRef(p.ClassName),
		element("DataHasValue",
			emptyElement("DataProperty", "#"+p.Name),
			literal,
		),
	)
}

// RenderAnnotation declares the annotation class under the annotation root.
func RenderAnnotation(a domain.Annotation) string {
	name := a.OntologyName()
	return strings.Join([]string{
		element("Declaration", classRef(name)),
		subClassOf(name, domain.RootAnnotationClass),
	}, "\n")
}

// RenderAnnotations renders every annotation in order.
func RenderAnnotations(annotations []domain.Annotation) string {
	blocks := make([]string, len(annotations))
	for i, a := range annotations {
		blocks[i] = RenderAnnotation(a)
	}
	return strings.Join(blocks, "\n")
}

// RenderEmoji renders the class, its annotations, property values and color.
// An emoji without annotations gets no intersection restriction.
func RenderEmoji(emoji domain.Emoji, props []domain.OWLProperty, color string) string {
	name := emoji.OntologyName()
	blocks := []string{
		element("Declaration", classRef(name)),
		subClassOf(name, domain.RootEmojiClass),
	}

	if len(emoji.Annotations) > 0 {
		classes := make([]string, len(emoji.Annotations))
		for i, a := range emoji.Annotations {
			classes[i] = classRef(a.OntologyName())
		}
		blocks = append(blocks, element("SubClassOf",
			classRef(name),
			element("ObjectIntersectionOf", classes...),
		))
	}

	for _, p := range props {
		blocks = append(blocks, RenderPropertyAssertion(p))
	}

	blocks = append(blocks, element("SubClassOf",
		classRef(name),
		element("ObjectSomeValuesFrom",
			emptyElement("ObjectProperty", "#"+domain.HasColorProperty),
			classRef(domain.ColorClassName(color)),
		),
	))

	return strings.Join(blocks, "\n")
}

// RenderColors declares the color root class, the hasColor property and
// one subclass per palette entry.
func RenderColors(palette []domain.NamedColor) string {
	blocks := []string{
		element("Declaration", classRef(domain.RootColorClass)),
		element("Declaration", emptyElement("ObjectProperty", "#"+domain.HasColorProperty)),
	}
	for _, c := range palette {
		blocks = append(blocks, subClassOf(c.ClassName(), domain.RootColorClass))
	}
	return strings.Join(blocks, "\n")
}

// RenderCategoryDeclarations declares each category class under the category root.
func RenderCategoryDeclarations(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	blocks := []string{element("Declaration", classRef(domain.RootCategoryClass))}
	for _, c := range categories {
		blocks = append(blocks,
			element("Declaration", classRef(c)),
			subClassOf(c, domain.RootCategoryClass),
		)
	}
	return strings.Join(blocks, "\n")
}

// RenderCategorySubclasses links each annotation class to its category class.
func RenderCategorySubclasses(entries []domain.CategoryEntry) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = subClassOf(e.AnnotationClass(), e.CategoryClass())
	}
	return strings.Join(blocks, "\n")
}

func subClassOf(class, parent string) string {
	return element("SubClassOf", classRef(class), classRef(parent))
}

func classRef(name string) string {
	return emptyElement("Class", "#"+name)
}

func emptyElement(tag, iri string) string {
	return fmt.Sprintf(`<%s IRI="%s"/>`, tag, escapeXML(iri))
}

// element wraps children in tag, nesting them one level deeper.
func element(tag string, children ...string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">\n")
	for _, child := range children {
		b.WriteString(indentLines(child, indentUnit))
		b.WriteString("\n")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

func indentLines(s, prefix string) string {
	if s == "" || prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
