package buffer

import (
	"github.com/arcweave/runepad/internal/external"
	"github.com/arcweave/runepad/internal/schedule"
	"github.com/arcweave/runepad/internal/statuslog"
)

// Default configuration values.
const (
	DefaultWorkerCount = 2
	DefaultTabWidth    = 4
)

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithClipboard sets the clipboard collaborator copy/cut/paste use.
// Defaults to an in-process ring clipboard if not set.
func WithClipboard(clip Clipboard) Option {
	return func(b *Buffer) { b.clip = clip }
}

// WithFileSystem sets the filesystem collaborator Save uses.
func WithFileSystem(fs external.FileSystem) Option {
	return func(b *Buffer) { b.fs = fs }
}

// WithVCS sets the optional version-control probe.
func WithVCS(vcs external.VCS) Option {
	return func(b *Buffer) { b.vcs = vcs }
}

// WithLogger overrides the default statuslog.Global() logger.
func WithLogger(l *statuslog.Logger) Option {
	return func(b *Buffer) { b.log = l }
}

// WithPool supplies an existing scheduler pool instead of letting the
// buffer create its own. Useful when several buffers should share one
// bounded worker pool.
func WithPool(pool *schedule.Pool) Option {
	return func(b *Buffer) { b.pool = pool; b.ownsPool = false }
}

// WithViewport sets the initial terminal viewport size.
func WithViewport(size external.Size) Option {
	return func(b *Buffer) { b.viewport = size }
}
