package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	defaultOntologyFile = "EmojiOntology.owl"
	defaultTemplateFile = "emoji.owl"
)

var (
	ontologyOutput string
	templateOutput string
)

var ontologyCmd = &cobra.Command{
	Use:   "ontology",
	Short: "Generate the OWL/XML ontology",
	Long: `Generate the emoji ontology as OWL/XML.

Emoji, annotations, categories, colors and data properties are rendered into
the configured template. The color cache must cover every emoji; run
"emojiont analyse colors" first. Use -o - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runOntology,
}

var ontologyTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the built-in OWL template",
	Long: `Write the built-in OWL template to a file so it can be customised.
Point inputs.template at the file to use it.`,
	Args: cobra.NoArgs,
	RunE: runOntologyTemplate,
}

func init() {
	ontologyCmd.Flags().StringVarP(&ontologyOutput, "output", "o", defaultOntologyFile, "Output file")
	ontologyTemplateCmd.Flags().StringVarP(&templateOutput, "output", "o", defaultTemplateFile, "Output file")
	ontologyCmd.AddCommand(ontologyTemplateCmd)
	rootCmd.AddCommand(ontologyCmd)
}

func runOntology(cmd *cobra.Command, _ []string) error {
	if ontologyGenerator == nil {
		return errors.New("ontology service not configured")
	}

	owl, err := ontologyGenerator.GenerateOWL(context.Background())
	if err != nil {
		return fmt.Errorf("generate ontology: %w", err)
	}
	return writeOutput(cmd, ontologyOutput, owl)
}

func runOntologyTemplate(cmd *cobra.Command, _ []string) error {
	if templateWriter == nil {
		return errors.New("template writer not configured")
	}
	if err := templateWriter(templateOutput); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", templateOutput)
	return nil
}
