package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/mendgrid/internal/repair"
)

// reporter prints the human-readable completion messages. Styling is decided
// by the renderer of the output writer, so non-terminals get plain text.
type reporter struct {
	w     io.Writer
	ok    lipgloss.Style
	label lipgloss.Style
	faint lipgloss.Style
}

func newReporter(w io.Writer) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w:     w,
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		label: r.NewStyle().Bold(true),
		faint: r.NewStyle().Faint(true),
	}
}

func (r *reporter) step(address string, res *repair.Result) {
	var msg string
	switch res.Op {
	case repair.OpRestore:
		msg = fmt.Sprintf("restored %s from %s (%d bytes)", res.Destination, res.Source, res.BytesWritten)
	case repair.OpStripLines:
		msg = fmt.Sprintf("removed %d line(s) from %s into %s (%d bytes)", res.LinesRemoved, res.Source, res.Destination, res.BytesWritten)
	default:
		msg = fmt.Sprintf("%s done", res.Op)
	}
	if res.DryRun {
		msg += " " + r.faint.Render("[dry run, nothing written]")
	}
	fmt.Fprintf(r.w, "%s %s %s\n", r.ok.Render("✔"), r.label.Render(address+":"), msg)
}

func (r *reporter) summary(steps int, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.w, "Dry run complete: %d step(s) checked, no files changed.\n", steps)
		return
	}
	fmt.Fprintf(r.w, "%s %d step(s) completed, files have been fixed!\n", r.ok.Render("Done:"), steps)
}

func (r *reporter) nothingToDo() {
	fmt.Fprintln(r.w, "Nothing to repair: the plan has no steps.")
}
