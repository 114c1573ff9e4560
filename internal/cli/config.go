package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyzicist/snowballer/internal/example"
)

//nolint:gochecknoglobals // Cobra command state
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print an annotated example config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := example.Render()
		if err != nil {
			return fmt.Errorf("rendering example config: %w", err)
		}

		fmt.Println(rendered) //nolint:forbidigo // Config output to console

		return nil
	},
}
