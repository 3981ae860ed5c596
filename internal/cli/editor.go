package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/editor"
	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

var errNotInSession = errors.New("file was not opened in this edit session")

func newEditorCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "editor FILE...",
		Short: "Edit tags in $VISUAL or $EDITOR",
		Long: `Open the tags of the given files as JSON in an external editor and apply
the result once the editor exits.

The editor is $VISUAL, then $EDITOR, then the "editor" config key, then vi.
Nothing is written if the editor fails or the result is not valid JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.editInEditor(args)
		},
	}
}

func (a *App) editInEditor(paths []string) error {
	current := make(map[string]tags.Snapshot, len(paths))
	allowed := make(map[string]bool, len(paths))
	for _, path := range paths {
		s, err := a.readTags(path)
		if err != nil {
			a.fileError(errmsg.OpReadTags, path, err)
			continue
		}
		current[path] = s
		allowed[path] = true
	}
	if len(current) == 0 {
		return nil
	}

	single := len(paths) == 1
	var doc any = current
	if single {
		doc = current[paths[0]]
	}

	draft, err := tags.MarshalIndent(doc)
	if err != nil {
		return &opError{op: errmsg.OpWriteDraft, err: err}
	}

	command := editor.ResolveEditor(a.Getenv, a.Config.Editor)
	a.log.WithField("editor", command).Debug("opening editor")

	edited, err := a.EditContent(command, string(draft))
	if err != nil {
		return &opError{op: errmsg.OpEditTags, err: err}
	}

	var desired map[string]tags.Snapshot
	if single {
		s, err := tags.ParseSnapshot([]byte(edited))
		if err != nil {
			return &opError{op: errmsg.OpParseInput, err: err}
		}
		desired = map[string]tags.Snapshot{paths[0]: s}
	} else {
		desired, err = tags.ParseBatch([]byte(edited))
		if err != nil {
			return &opError{op: errmsg.OpParseInput, err: err}
		}
	}

	a.applyBatch(desired, allowed)
	return nil
}
