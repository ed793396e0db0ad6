package download

import "context"

// Fetcher defines the interface for the download stage.
type Fetcher interface {
	// Fetch downloads rawURL into a new artifact and returns its path.
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// ArtifactNamer hands out fresh artifact paths. Implemented by
// platform.ScratchDir.
type ArtifactNamer interface {
	NewArtifactPath() string
}
