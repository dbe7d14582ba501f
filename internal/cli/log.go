// Package cli implements the latticegraph command-line interface.
//
// Commands load a TOML or YAML map (see package mapfile) and query it:
//   - info: shape kind, cell, open-cell and edge counts
//   - neighbors: open neighbors of one cell with direction names
//   - path: shortest path with gonum Dijkstra or A*, drawn over the map
//   - components: connected components, largest first
//
// All commands accept --verbose (-v) for timestamped debug logging. The
// logger travels in the command context; once a map is loaded, every record
// carries its file name and kind.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticegraph/mapfile"
)

// newLogger returns the CLI logger writing to w. Verbose mode lowers the
// level to debug and stamps each record with the wall clock.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "latticegraph", Level: log.InfoLevel})
	if verbose {
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
		l.SetTimeFormat(time.TimeOnly)
	}

	return l
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the logger attached to ctx, or log.Default().
func loggerFrom(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
			return l
		}
	}

	return log.Default()
}

// loadMap reads the map at path and scopes the command's logger to it, so
// that later records from cmd carry the map file name and kind.
func loadMap(cmd *cobra.Command, path string) (*mapfile.Map, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	m, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}
	l := loggerFrom(ctx).With("map", filepath.Base(path), "kind", m.Kind())
	cmd.SetContext(withLogger(ctx, l))
	elapsed(l, start, "loaded map", "cells", m.Len(), "open", m.NodeCount())

	return m, nil
}

// elapsed logs msg at debug level with the time spent since start.
func elapsed(l *log.Logger, start time.Time, msg string, keyvals ...any) {
	l.Debug(msg, append(keyvals, "took", time.Since(start).Round(time.Microsecond))...)
}
