package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

func newEditCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Apply tags read as JSON from stdin",
		Long: `Read a JSON object mapping filenames to tags from stdin and apply it.

Only the fields given for a file are written, and only when they differ from
the file's current value:

  echo '{"a.mp3": {"year": 1999}}' | tagedit edit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.edit()
		},
	}
}

func (a *App) edit() error {
	data, err := io.ReadAll(a.In)
	if err != nil {
		return &opError{op: errmsg.OpReadInput, err: err}
	}

	batch, err := tags.ParseBatch(data)
	if err != nil {
		return &opError{op: errmsg.OpParseInput, err: err}
	}

	a.applyBatch(batch, nil)
	return nil
}

// applyBatch applies every entry in filename order. When allowed is not nil,
// entries for other files are reported and skipped.
func (a *App) applyBatch(batch map[string]tags.Snapshot, allowed map[string]bool) {
	paths := make([]string, 0, len(batch))
	for path := range batch {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		if allowed != nil && !allowed[path] {
			a.fileError(errmsg.OpUpdateTags, path, errNotInSession)
			continue
		}
		a.apply(path, batch[path])
	}
}
