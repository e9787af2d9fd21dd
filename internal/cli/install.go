package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logger"
)

func newInstallCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the yt-dlp, ffmpeg and ffprobe binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), f.verbose)
			return download.InstallTools(cmd.Context(), log)
		},
	}
}
