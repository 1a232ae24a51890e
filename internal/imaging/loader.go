package imaging

import (
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load decodes the image file at path into a new grid.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP. Alpha is
// discarded. Any failure to open or decode the file wraps ErrIO.
func Load(path string) (*Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %v: %w", path, err, ErrIO)
	}
	g, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return g, nil
}

// CheckOutputPath reports whether Save knows how to encode path, judged by
// its extension. Returns an error wrapping ErrIO for unsupported extensions.
func CheckOutputPath(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot write %s: %v: %w", path, err, ErrIO)
	}
	return nil
}

// outputMode is the permission given to files written by Save.
const outputMode os.FileMode = 0o644

// Save encodes the grid to path.
//
// The format follows the extension: .png, .jpg/.jpeg, .gif, .tif/.tiff or
// .bmp. The image is written to a temporary file in the destination
// directory and renamed over path only after encoding succeeds, so a failed
// Save never leaves a partial output file behind. Failures wrap ErrIO.
func Save(g *Grid, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("cannot write %s: %v: %w", path, err, ErrIO)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".image-transform-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create output for %s: %v: %w", path, err, ErrIO)
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, g.Image(), format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to encode %s: %v: %w", path, err, ErrIO)
	}
	// CreateTemp opens the file 0600; outputs get the usual 0644.
	if err := tmp.Chmod(outputMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %v: %w", path, err, ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %v: %w", path, err, ErrIO)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %v: %w", path, err, ErrIO)
	}
	return nil
}

// GridCache decodes each image path at most once.
//
// Commands that name the same input several times, such as
// "blend a.png a.png b.png out.png", share one read-only grid per path.
// Grids returned by the cache must not be modified.
//
// GridCache is not safe for concurrent use.
type GridCache struct {
	grids map[string]*Grid
	loads int
}

// NewGridCache creates an empty cache.
func NewGridCache() *GridCache {
	return &GridCache{
		grids: make(map[string]*Grid),
	}
}

// Load returns the cached grid for path, decoding the file on first use.
//
// The cache is keyed by the exact path string. Different spellings of the
// same file (relative vs absolute) are decoded separately.
func (c *GridCache) Load(path string) (*Grid, error) {
	if g, ok := c.grids[path]; ok {
		return g, nil
	}
	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.grids[path] = g
	c.loads++
	return g, nil
}

// LoadAll loads every path in order. Repeated paths yield the same grid.
func (c *GridCache) LoadAll(paths []string) ([]*Grid, error) {
	grids := make([]*Grid, 0, len(paths))
	for _, p := range paths {
		g, err := c.Load(p)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// Decodes returns how many files the cache has decoded.
func (c *GridCache) Decodes() int {
	return c.loads
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is detected from the file extension: "png", "jpeg", "gif",
	// "tiff", "bmp", "webp" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and reports its metadata.
func LoadInfo(cache *GridCache, path string) (*ImageInfo, error) {
	g, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %v: %w", path, err, ErrIO)
	}

	return &ImageInfo{
		Width:         g.Width(),
		Height:        g.Height(),
		Format:        formatName(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}
