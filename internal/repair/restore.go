package repair

import (
	"context"
	"errors"

	"github.com/vk/mendgrid/internal/ctxlog"
)

// Paths names the file an operation reads and the file it writes.
type Paths struct {
	Source      string
	Destination string
}

// Options tweaks how an operation touches the filesystem.
type Options struct {
	// DryRun reads and validates the source but never writes.
	DryRun bool
}

// Result describes what a finished operation did.
type Result struct {
	Op           string
	Source       string
	Destination  string
	BytesWritten int
	LinesRemoved int
	DryRun       bool
}

// OpRestore is the Result.Op of Restore.
const OpRestore = "restore"

// Restore copies the text content of p.Source verbatim over p.Destination.
// The destination is truncated first, never appended to.
func Restore(ctx context.Context, p Paths, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Restore started.", "source", p.Source, "destination", p.Destination, "dry_run", opts.DryRun)

	if p.Destination == "" {
		return nil, &OpError{Op: OpRestore, Kind: KindInvalidArgument, Err: errors.New("destination path is empty")}
	}

	content, err := readText(OpRestore, p.Source)
	if err != nil {
		return nil, err
	}
	logger.Debug("Source read.", "bytes", len(content))

	res := &Result{
		Op:          OpRestore,
		Source:      p.Source,
		Destination: p.Destination,
		DryRun:      opts.DryRun,
	}
	if opts.DryRun {
		res.BytesWritten = len(content)
		return res, nil
	}

	n, err := writeText(OpRestore, p.Destination, content)
	if err != nil {
		return nil, err
	}
	res.BytesWritten = n

	logger.Debug("Restore finished.", "bytes_written", n)
	return res, nil
}
