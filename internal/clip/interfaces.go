package clip

import (
	"context"
	"math/big"
)

// Clipper defines the interface for the clip stage.
type Clipper interface {
	// Clip extracts [start, end) of inputPath into a new artifact and returns its path.
	Clip(ctx context.Context, inputPath string, start, end *big.Int) (string, error)
}

// ArtifactNamer hands out fresh artifact paths. Implemented by
// platform.ScratchDir.
type ArtifactNamer interface {
	NewArtifactPath() string
}
