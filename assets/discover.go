package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

// ManifestName is the file listing textures explicitly. It is a JSON array
// of file names relative to the texture directory.
const ManifestName = "manifest.json"

// Extensions are the file extensions picked up by the directory scan.
var Extensions = []string{".png", ".jpg", ".jpeg", ".webp", ".gif", ".bmp"}

// HasImageExt reports whether name ends in one of Extensions, ignoring case.
func HasImageExt(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return slices.Contains(Extensions, ext)
}

// ReadManifest returns the local entries of the manifest in fsys. Absolute
// URLs are skipped since textures only load from fsys.
func ReadManifest(fsys fs.FS) ([]string, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || strings.HasPrefix(e, "http://") || strings.HasPrefix(e, "https://") {
			continue
		}
		names = append(names, path.Clean(strings.TrimPrefix(e, "/")))
	}
	return names, nil
}

// Scan lists the image files at the top level of fsys in sorted order.
func Scan(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("scan textures: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && HasImageExt(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// Decode reads one image file from fsys.
func Decode(fsys fs.FS, name string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Load discovers and decodes textures in fsys. Manifest entries are tried
// first; when the manifest is missing or none of its images decode, the
// directory is scanned instead. Images that fail to decode are skipped.
// A missing directory yields an empty catalog.
func Load(fsys fs.FS) (*Catalog, error) {
	log := tetris.Logger()

	names, err := ReadManifest(fsys)
	switch {
	case err == nil:
		if c := decodeAll(fsys, names); c.Len() > 0 {
			log.Info("textures loaded from manifest", "count", c.Len())
			return c, nil
		}
		log.Info("manifest yielded no textures, scanning directory")
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Warn("ignoring manifest", "err", err)
	}

	names, err = Scan(fsys)
	if errors.Is(err, fs.ErrNotExist) {
		return &Catalog{}, nil
	}
	if err != nil {
		return nil, err
	}
	c := decodeAll(fsys, names)
	log.Info("textures loaded from directory", "count", c.Len())
	return c, nil
}

func decodeAll(fsys fs.FS, names []string) *Catalog {
	var kept []string
	var images []image.Image
	for _, name := range names {
		img, err := Decode(fsys, name)
		if err != nil {
			tetris.Logger().Debug("skipping texture", "name", name, "err", err)
			continue
		}
		kept = append(kept, name)
		images = append(images, img)
	}
	return NewCatalog(kept, images)
}
