// Package report renders run summaries and video metadata to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// Mode selects the framing of a summary.
type Mode int

const (
	ModeDownload Mode = iota
	ModeDryRun
	ModeInfo
)

// Layout constants
const (
	SeparatorWidth = 50
	NotAvailable   = "N/A"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	noteColor    = color.New(color.FgYellow)
)

// labels is the wording of one summary framing.
type labels struct {
	title   string
	success string
	failed  string
	files   string
}

var modeLabels = map[Mode]labels{
	ModeDownload: {"DOWNLOAD SUMMARY", "Successful", "Failed", "Downloaded files"},
	ModeDryRun:   {"DRY RUN SUMMARY (nothing was downloaded)", "Would download", "Would fail", "Files that would be created"},
	ModeInfo:     {"INFO SUMMARY", "Retrieved", "Failed", ""},
}

// Printer writes reports to an io.Writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out, or to stdout when out is nil.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

func (p *Printer) separator(ch string) {
	fmt.Fprintln(p.out, strings.Repeat(ch, SeparatorWidth))
}

// PrintSummary renders result. Categorized results get one section per
// category followed by the overall totals.
func (p *Printer) PrintSummary(result *model.RunResult, mode Mode) {
	l, ok := modeLabels[mode]
	if !ok {
		l = modeLabels[ModeDownload]
	}

	fmt.Fprintln(p.out)
	p.separator("=")
	headerColor.Fprintln(p.out, l.title)
	p.separator("=")

	if result.Categorized() {
		for _, name := range result.CategoryOrder {
			c := result.PerCategory[name]
			if c == nil {
				continue
			}
			fmt.Fprintln(p.out)
			headerColor.Fprintf(p.out, "[%s]\n", name)
			p.counts(c, l, "  ")
			p.failedURLs(c, "  ")
			p.files(c, l, "  ")
		}
		fmt.Fprintln(p.out)
		p.separator("-")
		headerColor.Fprintln(p.out, "TOTAL")
	}

	p.counts(result, l, "")
	p.failedURLs(result, "")
	if !result.Categorized() {
		p.files(result, l, "")
	}

	if mode == ModeDryRun {
		fmt.Fprintln(p.out)
		noteColor.Fprintln(p.out, "Dry run: run again without --dry-run to download.")
	}
}

func (p *Printer) counts(r *model.RunResult, l labels, indent string) {
	fmt.Fprintf(p.out, "%s%s: %s\n", indent, l.success, successColor.Sprint(len(r.Successful)))
	fmt.Fprintf(p.out, "%s%s: %s\n", indent, l.failed, failColor.Sprint(len(r.Failed)))
}

func (p *Printer) failedURLs(r *model.RunResult, indent string) {
	if len(r.Failed) == 0 {
		return
	}
	fmt.Fprintf(p.out, "%sFailed URLs:\n", indent)
	for _, u := range r.Failed {
		fmt.Fprintf(p.out, "%s  - %s\n", indent, failColor.Sprint(u))
	}
}

func (p *Printer) files(r *model.RunResult, l labels, indent string) {
	if l.files == "" || len(r.DownloadedFiles) == 0 {
		return
	}
	fmt.Fprintf(p.out, "%s%s:\n", indent, l.files)
	for _, f := range r.DownloadedFiles {
		title := f.Title
		if title == "" {
			title = f.URL
		}
		fmt.Fprintf(p.out, "%s  - %s\n", indent, title)
		fmt.Fprintf(p.out, "%s    %s\n", indent, absPath(f.FilePath))
	}
}

func absPath(path string) string {
	if path == "" {
		return NotAvailable
	}
	return platform.AbsPath(path)
}

// PrintInfo renders the metadata of one video followed by a separator.
func (p *Printer) PrintInfo(url string, info *model.VideoInfo) {
	field := func(name, value string) {
		if value == "" {
			value = NotAvailable
		}
		fmt.Fprintf(p.out, "%-10s %s\n", name+":", value)
	}

	headerColor.Fprintf(p.out, "Title:     %s\n", orNA(info.Title))
	field("Uploader", info.Uploader)
	field("Duration", info.DurationString())
	field("Views", countString(info.ViewCount))
	if info.Series != "" || info.Season != "" {
		field("Series", info.Series)
		field("Season", info.Season)
	}
	field("Filesize", sizeString(info.Size()))
	field("URL", url)
	p.separator("-")
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func countString(n int64) string {
	if n <= 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// sizeString formats a byte count with binary units.
func sizeString(n int64) string {
	if n <= 0 {
		return ""
	}
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
