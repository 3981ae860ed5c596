// Package cli implements the tagedit command tree.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/config"
	"github.com/llehouerou/tagedit/internal/editor"
	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

// App holds the process collaborators of one invocation. The zero values of
// the optional fields are replaced with the real ones by Run.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Getenv      func(string) string
	EditContent func(command, content string) (string, error)

	// Config skips loading configuration files when set.
	Config *config.Config
	// Backend overrides the configured tag backend when set.
	Backend tags.Backend

	configPath  string
	backendName string
	verbose     bool

	log     *logrus.Logger
	backend tags.Backend
	failed  bool
}

// New returns an App wired to the process' standard streams and environment.
func New() *App {
	return &App{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Getenv:      os.Getenv,
		EditContent: editor.EditContent,
	}
}

// opError is an error that aborts the whole invocation.
type opError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *opError) Error() string { return errmsg.FormatWith(e.op, e.context, e.err) }
func (e *opError) Unwrap() error { return e.err }

// Run executes the command line and returns the process exit status: 0 when
// every file was processed, 1 otherwise.
func (a *App) Run(args []string) int {
	a.setDefaults()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	if err := root.Execute(); err != nil {
		a.log.Error(err)
		return 1
	}
	if a.failed {
		return 1
	}
	return 0
}

func (a *App) setDefaults() {
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.Err == nil {
		a.Err = os.Stderr
	}
	if a.Getenv == nil {
		a.Getenv = os.Getenv
	}
	if a.EditContent == nil {
		a.EditContent = editor.EditContent
	}

	a.log = logrus.New()
	a.log.SetOutput(a.Err)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.failed = false
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tagedit",
		Short:         "Edit audio tags",
		Long:          "View and edit the title, artist, album, comment, genre, year and track tags of audio files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file")
	root.PersistentFlags().StringVar(&a.backendName, "backend", "", "Tag backend: taglib or go")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every file processed")

	root.AddCommand(
		newViewCommand(a),
		newEditCommand(a),
		newEditorCommand(a),
		newQuickEditCommand(a),
		newInfoCommand(a),
	)
	return root
}

// setup loads configuration and picks the tag backend.
func (a *App) setup(cmd *cobra.Command) error {
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	if a.Config == nil {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return &opError{op: errmsg.OpLoadConfig, context: a.configPath, err: err}
		}
		a.Config = cfg
	}

	if a.Backend != nil {
		a.backend = a.Backend
		return nil
	}

	name := a.Config.Backend
	if cmd.Flags().Changed("backend") {
		name = a.backendName
	}
	backend, err := tags.NewBackend(name)
	if err != nil {
		return err
	}
	a.backend = backend
	a.log.WithField("backend", name).Debug("using tag backend")
	return nil
}

// fileError reports a per-file failure; processing continues with the next
// file but the run exits non-zero.
func (a *App) fileError(op errmsg.Op, path string, err error) {
	a.failed = true
	a.log.WithField("file", path).Error(errmsg.Format(op, err))
}

func (a *App) readTags(path string) (tags.Snapshot, error) {
	f, err := tags.OpenWith(path, a.backend)
	if err != nil {
		return tags.Snapshot{}, err
	}
	return f.Tags()
}

// apply writes desired to path, reporting failures as file errors.
func (a *App) apply(path string, desired tags.Snapshot) {
	f, err := tags.OpenWith(path, a.backend)
	if err != nil {
		a.fileError(errmsg.OpUpdateTags, path, err)
		return
	}
	changed, err := f.Apply(desired)
	if err != nil {
		a.fileError(errmsg.OpUpdateTags, path, err)
		return
	}

	entry := a.log.WithField("file", f.Path())
	if changed {
		entry.Debug("tags updated")
	} else {
		entry.Debug("tags unchanged")
	}
}
