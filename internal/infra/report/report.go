package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"github.com/wky114/media-duplicate-cleaner/internal/usecase"
)

var categoryTitles = map[entity.GroupCategory]string{
	entity.CategorySameName:       "Images shadowing a same-name video",
	entity.CategoryImageCopy:      "Numbered image copies",
	entity.CategoryImageDimension: "Images with identical size and dimensions",
	entity.CategoryVideo:          "Video duplicates",
}

// Printer renders the plan and the final summary on stdout.
type Printer struct {
	out io.Writer

	header *color.Color
	keep   *color.Color
	del    *color.Color
	warn   *color.Color
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		keep:   color.New(color.FgGreen),
		del:    color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
	}
}

func (p *Printer) PrintPlan(plan *entity.CleanupPlan) {
	fmt.Fprintf(p.out, "%s %s\n", p.header.Sprint("Scan root:"), plan.Root)
	fmt.Fprintf(p.out, "%s %s\n\n", p.header.Sprint("Run:"), plan.RunID)

	if plan.VideoStageSkipped {
		fmt.Fprintln(p.out, p.warn.Sprint("ffprobe not found on PATH, video duplicate detection skipped"))
		fmt.Fprintln(p.out)
	}

	for _, cat := range entity.Categories {
		groups := plan.CategoryGroups(cat)
		fmt.Fprintf(p.out, "%s (%d groups)\n", p.header.Sprint(categoryTitles[cat]), len(groups))
		for i, g := range groups {
			fmt.Fprintf(p.out, "  group %d in %s [%s]\n", i+1, g.Dir, g.Reason)
			fmt.Fprintf(p.out, "    %s %s\n", p.keep.Sprint("keep  "), g.Keep.Path)
			for _, f := range g.Delete {
				fmt.Fprintf(p.out, "    %s %s (%s)\n", p.del.Sprint("delete"), f.Path, humanize.IBytes(uint64(f.Size)))
			}
		}
		fmt.Fprintln(p.out)
	}

	fmt.Fprintf(p.out, "%d files marked for deletion, %s reclaimable\n",
		plan.DeleteCount(), humanize.IBytes(uint64(plan.ReclaimableBytes())))
}

func (p *Printer) PrintSummary(sum usecase.ExecutionSummary, logPath string) {
	if sum.Skipped > 0 {
		fmt.Fprintf(p.out, "%s %d planned deletions skipped\n", p.warn.Sprint("Declined:"), sum.Skipped)
	} else {
		fmt.Fprintf(p.out, "Deleted %d files (%s reclaimed), %d failed\n",
			sum.Deleted, humanize.IBytes(uint64(sum.ReclaimedBytes)), sum.Failed)
	}
	fmt.Fprintf(p.out, "Run log: %s\n", logPath)
}
