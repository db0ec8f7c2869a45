package storage

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing uploaded event images
type ImageStore interface {
	// Save stores the image and returns its public URL. The original
	// filename is used only for its extension; stored names are generated.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
