package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Scratch directory layout
const (
	ScratchDirName   = "audioclip"
	LockFileName     = ".lock"
	PartialExtension = ".part"
)

// ErrScratchLocked is returned when another process owns the scratch directory
var ErrScratchLocked = errors.New("scratch directory is in use by another audioclip instance")

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultScratchDir returns the per-user directory used for artifacts when
// none is configured.
func DefaultScratchDir() string {
	if IsAndroid() {
		// App-private files dir; fyne exposes it through the storage root
		if root := os.Getenv("FILESDIR"); root != "" {
			return filepath.Join(root, ScratchDirName)
		}
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil || cacheDir == "" {
		return filepath.Join(os.TempDir(), ScratchDirName)
	}
	return filepath.Join(cacheDir, ScratchDirName)
}

// ScratchDir is a directory of ephemeral artifacts owned by a single
// process. Ownership is enforced with an advisory file lock.
type ScratchDir struct {
	path string
	ext  string
	lock *flock.Flock
}

// OpenScratchDir creates dir if needed and takes its lock. ext is the
// extension given to every artifact, e.g. ".mp3".
func OpenScratchDir(dir, ext string) (*ScratchDir, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultScratchDir()
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	if err := CreateDirectoryIfNotExists(absDir); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	lock := flock.New(filepath.Join(absDir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scratch lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScratchLocked, absDir)
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &ScratchDir{path: absDir, ext: ext, lock: lock}, nil
}

// Path returns the absolute directory path
func (d *ScratchDir) Path() string {
	return d.path
}

// NewArtifactPath returns a fresh, never-before-used artifact path.
func (d *ScratchDir) NewArtifactPath() string {
	return filepath.Join(d.path, generateArtifactName()+d.ext)
}

// Close releases the directory lock. Artifacts are left in place.
func (d *ScratchDir) Close() error {
	if d.lock == nil {
		return nil
	}
	return d.lock.Unlock()
}

// PartialPath returns the in-progress name for a final artifact path
func PartialPath(finalPath string) string {
	return finalPath + PartialExtension
}

// generateArtifactName generates a unique artifact name using UUID v7
func generateArtifactName() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Random v4 still guarantees uniqueness, only ordering is lost
		return uuid.NewString()
	}
	return id.String()
}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// FileSize returns the size of the file at path, or 0 if it cannot be read
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// RemoveQuietly removes path, ignoring a missing file
func RemoveQuietly(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
