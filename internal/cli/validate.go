package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dropdown/internal/logic"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <choices-file>",
		Short: "Check a choices file without opening the dropdown",
		Long: `Parse a choices file and report entries the dropdown would skip:
missing text, duplicate ids, or a file that does not parse at all.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	choices, err := logic.LoadChoicesFile(path)
	if err != nil {
		return err
	}

	store := logic.NewMemoryChoiceStore()
	skipped := store.ReplaceAll(choices)
	for _, err := range skipped {
		fmt.Fprintf(out, "skipped: %v\n", err)
	}

	disabled := 0
	for _, c := range store.Choices() {
		if c.Disabled {
			disabled++
		}
	}
	fmt.Fprintf(out, "%s: %d choices (%d disabled)\n", path, store.Len(), disabled)
	if sel, ok := store.Selected(); ok {
		fmt.Fprintf(out, "preselected: %s\n", sel.Text)
	}

	if len(skipped) > 0 {
		return fmt.Errorf("%d invalid entries in %s", len(skipped), path)
	}
	return nil
}
