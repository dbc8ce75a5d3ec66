package repair

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/mendgrid/internal/ctxlog"
)

// OpStripLines is the Result.Op of StripLines.
const OpStripLines = "strip_lines"

// FixedSuffix is appended to the source path when a strip has no explicit
// destination.
const FixedSuffix = ".fixed"

// DefaultTargets are the orphaned lines removed when no targets are given.
var DefaultTargets = []string{`color: 'blue'`, `color: "blue"`}

// Matcher decides whether a line is one of the literal targets. Targets and
// candidate lines are compared after trimming surrounding whitespace.
type Matcher struct {
	targets map[string]struct{}
}

// NewMatcher builds a Matcher for the given literal lines.
func NewMatcher(targets ...string) (*Matcher, error) {
	if len(targets) == 0 {
		return nil, &OpError{Op: OpStripLines, Kind: KindInvalidArgument, Err: errors.New("at least one target line is required")}
	}
	m := &Matcher{targets: make(map[string]struct{}, len(targets))}
	for i, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, &OpError{Op: OpStripLines, Kind: KindInvalidArgument, Err: fmt.Errorf("target %d is blank", i)}
		}
		m.targets[t] = struct{}{}
	}
	return m, nil
}

// DefaultMatcher matches `color: 'blue'` and `color: "blue"`.
func DefaultMatcher() *Matcher {
	m, _ := NewMatcher(DefaultTargets...)
	return m
}

// Match reports whether line, trimmed, equals one of the targets.
func (m *Matcher) Match(line string) bool {
	_, ok := m.targets[strings.TrimSpace(line)]
	return ok
}

// FilterLines drops every line of text that m matches, together with its own
// line terminator, and returns the remaining text plus the number of removed
// lines. Lines keep their original terminators ("\n" or "\r\n") and order.
func FilterLines(text string, m *Matcher) (string, int) {
	var b strings.Builder
	b.Grow(len(text))

	removed := 0
	for rest := text; rest != ""; {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
		}
		rest = rest[len(line):]

		if m.Match(line) {
			removed++
			continue
		}
		b.WriteString(line)
	}

	if removed == 0 {
		return text, 0
	}
	return b.String(), removed
}

// StripLines writes p.Source minus every matching line to p.Destination. An
// empty destination becomes p.Source + FixedSuffix. The source is never
// overwritten; a destination that resolves to the source is rejected before
// anything is read or written.
func StripLines(ctx context.Context, p Paths, m *Matcher, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if m == nil {
		m = DefaultMatcher()
	}
	if p.Destination == "" && p.Source != "" {
		p.Destination = p.Source + FixedSuffix
	}
	logger.Debug("Strip started.", "source", p.Source, "destination", p.Destination, "dry_run", opts.DryRun)

	if err := checkDistinct(p); err != nil {
		return nil, err
	}

	content, err := readText(OpStripLines, p.Source)
	if err != nil {
		return nil, err
	}

	filtered, removed := FilterLines(content, m)
	logger.Debug("Lines filtered.", "lines_removed", removed, "bytes_in", len(content), "bytes_out", len(filtered))

	res := &Result{
		Op:           OpStripLines,
		Source:       p.Source,
		Destination:  p.Destination,
		LinesRemoved: removed,
		DryRun:       opts.DryRun,
	}
	if opts.DryRun {
		res.BytesWritten = len(filtered)
		return res, nil
	}

	n, err := writeText(OpStripLines, p.Destination, filtered)
	if err != nil {
		return nil, err
	}
	res.BytesWritten = n

	logger.Debug("Strip finished.", "bytes_written", n)
	return res, nil
}

// checkDistinct rejects a destination that names the source, either by path
// or, when both exist, by file identity (links).
func checkDistinct(p Paths) error {
	if p.Source == "" {
		return &OpError{Op: OpStripLines, Kind: KindInvalidArgument, Err: errors.New("source path is empty")}
	}

	srcAbs, err := filepath.Abs(p.Source)
	if err != nil {
		return fsError(OpStripLines, p.Source, err)
	}
	dstAbs, err := filepath.Abs(p.Destination)
	if err != nil {
		return fsError(OpStripLines, p.Destination, err)
	}
	sameErr := &OpError{Op: OpStripLines, Kind: KindInvalidArgument, Path: p.Destination, Err: errors.New("destination must differ from source")}
	if srcAbs == dstAbs {
		return sameErr
	}

	srcInfo, err := os.Stat(p.Source)
	if err != nil {
		// readText reports the real failure.
		return nil
	}
	dstInfo, err := os.Stat(p.Destination)
	if err != nil {
		return nil
	}
	if os.SameFile(srcInfo, dstInfo) {
		return sameErr
	}
	return nil
}
