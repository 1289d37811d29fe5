package storage

import (
	"context"
	"io"
)

// Storage stores uploaded files (resumes) and hands back the
// storage-relative URL recorded on the profile.
type Storage interface {
	// Save writes the file under a collision-free name derived from
	// originalName and returns its public URL path.
	Save(ctx context.Context, originalName string, reader io.Reader) (string, error)

	// Delete removes a stored file by its URL path. Missing files are
	// not an error.
	Delete(ctx context.Context, urlPath string) error
}

// Config holds storage configuration.
type Config struct {
	BasePath string // directory for local files
	BaseURL  string // public URL prefix, e.g. /uploads
}
