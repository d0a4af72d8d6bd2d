// Package checklog writes the append-only record of performed checks.
// It exposes a small Recorder interface so the HTTP handler can be
// tested without touching the filesystem.
package checklog
