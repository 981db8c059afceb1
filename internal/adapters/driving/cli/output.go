package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdoutPath selects the command's standard output instead of a file.
const stdoutPath = "-"

// writeOutput writes content to path, or to the command output when path is "-".
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == stdoutPath {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // generated output is world readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
