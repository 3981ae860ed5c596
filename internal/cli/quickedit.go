package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

var quickEditShorthands = map[string]string{
	"title":   "t",
	"artist":  "r",
	"album":   "l",
	"comment": "c",
	"genre":   "g",
	"year":    "y",
	"track":   "n",
}

func newQuickEditCommand(a *App) *cobra.Command {
	values := make(map[string]*string, len(tags.Fields))

	cmd := &cobra.Command{
		Use:   "quickedit [flags] FILE...",
		Short: "Set tags on the fly",
		Long: `Set the same tag values on every given file.

Only the flags present on the command line are written; an empty value
clears the tag:

  tagedit quickedit -t "New Title" a.mp3 b.mp3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var desired tags.Snapshot
			for _, f := range tags.Fields {
				if !cmd.Flags().Changed(f.Name) {
					continue
				}
				if err := f.Set(&desired, *values[f.Name]); err != nil {
					return &opError{op: errmsg.OpParseInput, err: fmt.Errorf("--%s: %w", f.Name, err)}
				}
			}
			for _, path := range args {
				a.apply(path, desired)
			}
			return nil
		},
	}

	for _, f := range tags.Fields {
		v := new(string)
		values[f.Name] = v
		cmd.Flags().StringVarP(v, f.Name, quickEditShorthands[f.Name], "", fmt.Sprintf("Set %s tag", f.Name))
	}
	return cmd
}
