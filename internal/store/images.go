package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yalisommer/creature-creator/pkg/utils"
)

// ImageStore persists submitted drawings under the image root served by
// the /images static route. Every save gets a fresh filename, so
// repeated saves for the same owner never overwrite each other (the
// previous file is simply orphaned).
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

// extensionFor picks a file extension from the data-URL metadata.
func extensionFor(metadata string) string {
	switch {
	case strings.Contains(metadata, "image/jpeg"), strings.Contains(metadata, "image/jpg"):
		return ".jpg"
	case strings.Contains(metadata, "image/gif"):
		return ".gif"
	case strings.Contains(metadata, "image/webp"):
		return ".webp"
	default:
		return ".png"
	}
}

// Save decodes a data-URL-style string ("<metadata>,<base64>") and
// writes it as <ownerKey>-<token><ext> under the image root. It returns
// the path the HTTP surface serves the file at.
func (s *ImageStore) Save(encoded, ownerKey string) (string, error) {
	metadata := ""
	payload := encoded
	if idx := strings.Index(encoded, ","); idx >= 0 {
		metadata = encoded[:idx]
		payload = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}

	filename := fmt.Sprintf("%s-%s%s", ownerKey, utils.GenerateToken(), extensionFor(metadata))

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("write image %s: %w", filename, err)
	}
	if err := os.WriteFile(filepath.Join(s.root, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", filename, err)
	}

	return "/images/" + filename, nil
}
