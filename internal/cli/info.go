package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tagedit/internal/errmsg"
	"github.com/llehouerou/tagedit/internal/tags"
)

func newInfoCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Show audio properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				info, err := tags.ReadAudioInfo(path)
				if err != nil {
					a.fileError(errmsg.OpReadInfo, path, err)
					continue
				}
				if _, err := fmt.Fprint(a.Out, formatInfo(path, info)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func formatInfo(path string, info *tags.AudioInfo) string {
	return fmt.Sprintf("%s\n  format:\t%s\n  duration:\t%s\n  bitrate:\t%d kbps\n  sample rate:\t%d Hz\n  channels:\t%d\n  size:\t%s\n",
		path,
		info.Format,
		info.Duration.Round(time.Second),
		info.Bitrate,
		info.SampleRate,
		info.Channels,
		humanize.IBytes(uint64(info.Size)), //nolint:gosec // file sizes are never negative
	)
}
