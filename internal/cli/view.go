package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

func newViewCommand(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "view FILE...",
		Short: "View tags from files",
		Long: `Print the tags of one or more files.

A single file is printed as "field<TAB>value" lines. Several files, or --json,
print a JSON object keyed by filename.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.view(args, asJSON)
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output tags in JSON format")
	return cmd
}

func (a *App) view(paths []string, asJSON bool) error {
	snapshots := make(map[string]tags.Snapshot, len(paths))
	for _, path := range paths {
		s, err := a.readTags(path)
		if err != nil {
			a.fileError(errmsg.OpReadTags, path, err)
			continue
		}
		snapshots[path] = s
	}

	if len(paths) == 1 && !asJSON {
		s, ok := snapshots[paths[0]]
		if !ok {
			return nil
		}
		_, err := io.WriteString(a.Out, s.String())
		return err
	}

	data, err := tags.MarshalIndent(snapshots)
	if err != nil {
		return err
	}
	_, err = a.Out.Write(data)
	return err
}
