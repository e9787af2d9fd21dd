// Package cli wires the command line to the batch pipeline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-batch/internal/categories"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/report"
	"github.com/ytget/yt-batch/internal/source"
)

// Version information - set via ldflags during build.
var Version = "dev"

// EnvFile is loaded into the environment before a run when it exists.
const EnvFile = ".env"

// NoURLsMessage is printed when no source yields a URL.
const NoURLsMessage = "No URLs provided. Use --help for usage information."

// Flag names
const (
	flagFile            = "file"
	flagOutput          = "output"
	flagQuality         = "quality"
	flagDelayMin        = "delay-min"
	flagDelayMax        = "delay-max"
	flagInfoOnly        = "info-only"
	flagDryRun          = "dry-run"
	flagConfig          = "config"
	flagNoAutoDiscover  = "no-auto-discover"
	flagExpandPlaylists = "expand-playlists"
	flagLogDir          = "log-dir"
	flagVerbose         = "verbose"
)

// flags holds the parsed command line.
type flags struct {
	file            string
	output          string
	quality         string
	delayMin        int
	delayMax        int
	infoOnly        bool
	dryRun          bool
	configPath      string
	noAutoDiscover  bool
	expandPlaylists bool
	logDir          string
	verbose         bool
}

// deps are the collaborators of a run. Tests replace them.
type deps struct {
	extractor  download.Extractor
	discoverer config.Discoverer
	expander   source.Expander
	sleep      download.SleepFunc

	// configPaths and urlFiles override the probed default files when set.
	configPaths []string
	urlFiles    []string
}

func defaultDeps() *deps {
	return &deps{
		discoverer: platform.NewDiscovery(),
		expander:   platform.NewPlaylistExpander(),
	}
}

// NewRootCommand returns the yt-batch command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(d *deps) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "yt-batch [urls...]",
		Short: "Batch video downloader built on yt-dlp",
		Long: `yt-batch downloads videos one at a time with a random pause between them.

URLs come from the command line, from a text file with one URL per line,
or from a YAML file with named categories. Without either, urls.yaml,
urls.yml, urls.txt and their config/ counterparts are tried in turn.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if platform.IsRegularFile(EnvFile) {
				if err := godotenv.Load(EnvFile); err != nil {
					return fmt.Errorf("load %s: %w", EnvFile, err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, d)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, flagFile, "f", "", "File containing URLs (one per line) or a YAML category file")
	fl.StringVarP(&f.output, flagOutput, "o", config.DefaultOutputDir, "Output directory")
	fl.StringVarP(&f.quality, flagQuality, "q", string(model.DefaultQuality), "Video quality: "+model.QualityList())
	fl.IntVar(&f.delayMin, flagDelayMin, config.DefaultDelayMin, "Minimum delay between downloads in seconds")
	fl.IntVar(&f.delayMax, flagDelayMax, config.DefaultDelayMax, "Maximum delay between downloads in seconds")
	fl.BoolVar(&f.infoOnly, flagInfoOnly, false, "Only print video information, do not download")
	fl.BoolVar(&f.dryRun, flagDryRun, false, "Show what would be downloaded without downloading")
	fl.StringVarP(&f.configPath, flagConfig, "c", "", "Options file (YAML, JSON or TOML)")
	fl.BoolVar(&f.noAutoDiscover, flagNoAutoDiscover, false, "Do not look for default URL files")
	fl.BoolVar(&f.expandPlaylists, flagExpandPlaylists, false, "Expand playlist URLs into their videos")
	cmd.PersistentFlags().StringVar(&f.logDir, flagLogDir, logger.DefaultLogDir, "Directory for log files (empty disables file logging)")
	cmd.PersistentFlags().BoolVarP(&f.verbose, flagVerbose, "v", false, "Enable verbose logging")

	cmd.AddCommand(newInstallCommand(f))
	return cmd
}

// openLogger returns the run logger and its teardown.
func openLogger(cmd *cobra.Command, f *flags) (*logger.Logger, func() error, error) {
	if f.logDir == "" {
		return logger.New(cmd.ErrOrStderr(), f.verbose), func() error { return nil }, nil
	}
	return logger.Open(f.logDir, cmd.ErrOrStderr(), f.verbose)
}

// delayRange validates the --delay-min/--delay-max pair. When only one bound
// is given and it crosses the other's default, the default follows it.
func delayRange(cmd *cobra.Command, f *flags) (model.DelayRange, error) {
	d := model.DelayRange{Min: f.delayMin, Max: f.delayMax}
	minSet := cmd.Flags().Changed(flagDelayMin)
	maxSet := cmd.Flags().Changed(flagDelayMax)
	if d.Min > d.Max && minSet != maxSet {
		if minSet {
			d.Max = d.Min
		} else {
			d.Min = d.Max
		}
	}
	if err := d.Validate(); err != nil {
		return model.DelayRange{}, fmt.Errorf("invalid --%s/--%s: %w", flagDelayMin, flagDelayMax, err)
	}
	return d, nil
}

func run(cmd *cobra.Command, args []string, f *flags, d *deps) error {
	quality, err := model.ParseQuality(f.quality)
	if err != nil {
		return err
	}
	delay, err := delayRange(cmd, f)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cmd, f)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error closing log: %v\n", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliOpts := config.CLIOptions{
		Quality:    quality,
		QualitySet: cmd.Flags().Changed(flagQuality),
		OutputDir:  f.output,
		OutputSet:  cmd.Flags().Changed(flagOutput),
	}
	resolver := config.NewResolver(log, d.discoverer)
	if d.configPaths != nil {
		resolver.SetSearchPaths(d.configPaths)
	}
	opts := resolver.Resolve(cliOpts, f.configPath)
	if f.verbose && opts.FFmpegLocation != "" {
		if v, err := platform.VerifyFFmpeg(ctx, platform.FFmpegBinary(opts.FFmpegLocation)); err != nil {
			log.Warnf("FFmpeg check failed: %v", err)
		} else {
			log.Debugf("%s", v)
		}
	}

	catDefaults := categories.DefaultDefaults()
	catDefaults.Delay = delay
	if cliOpts.OutputSet {
		catDefaults.OutputBase = f.output
	}
	src := source.New(log, categories.NewLoader(log, catDefaults))
	src.SetAutoDiscover(!f.noAutoDiscover)
	if d.urlFiles != nil {
		src.SetDefaultFiles(d.urlFiles)
	}
	if f.expandPlaylists && d.expander != nil {
		src.SetExpander(d.expander)
	}

	plan, err := src.Resolve(ctx, args, f.file)
	if errors.Is(err, source.ErrNoWork) {
		fmt.Fprintln(cmd.OutOrStdout(), NoURLsMessage)
		return nil
	}
	if err != nil {
		return err
	}

	items := source.Items(plan, opts, delay)
	extractor := d.extractor
	if extractor == nil {
		extractor = download.NewYTDLP(log)
	}
	runner := download.NewRunner(extractor, log)
	if d.sleep != nil {
		runner.SetSleep(d.sleep)
	}
	printer := report.NewPrinter(cmd.OutOrStdout())

	switch {
	case f.infoOnly:
		log.Infof("Getting info for %d URLs from %s", len(items), plan.Origin)
		result := runner.Inspect(ctx, items, func(item *model.WorkItem, info *model.VideoInfo) {
			printer.PrintInfo(item.URL, info)
		})
		printer.PrintSummary(result, report.ModeInfo)
	case f.dryRun:
		log.Infof("Dry run of %d URLs from %s", len(items), plan.Origin)
		printer.PrintSummary(runner.Run(ctx, items, true), report.ModeDryRun)
	default:
		log.Infof("Downloading %d URLs from %s", len(items), plan.Origin)
		printer.PrintSummary(runner.Run(ctx, items, false), report.ModeDownload)
	}
	return nil
}

// Execute runs the root command with a context cancelled on interrupt and
// returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
