// Package assets turns on-disk images into strings the overlay webview can
// embed directly, without giving the frontend filesystem access.
package assets

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zhaohan-Wang/Star-Office-UI/internal/metrics"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MIMEForPath maps a file extension to its image MIME type.
// Unknown extensions fall back to image/png.
func MIMEForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := mimeByExt[ext]; ok {
		return mime
	}
	return "image/png"
}

// DataURL reads the file at path and returns it as a base64 data: URL.
func DataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	metrics.AssetsEncodedTotal.Inc()
	metrics.AssetsEncodedBytes.Add(float64(len(raw)))

	return fmt.Sprintf("data:%s;base64,%s", MIMEForPath(path), base64.StdEncoding.EncodeToString(raw)), nil
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// pngHeaderLen covers signature (8) + IHDR length/type (8) + width (4) + height (4).
const pngHeaderLen = 24

// PNGWidth reads the pixel width from a PNG file's IHDR chunk without
// decoding the image. The IHDR chunk is required to come first, so the
// width always sits at byte offset 16.
func PNGWidth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, pngHeaderLen)
	if _, err := io.ReadFull(f, header); err != nil {
		return 0, fmt.Errorf("%s: short read: %w", path, err)
	}

	if !bytes.Equal(header[:8], pngSignature) {
		return 0, fmt.Errorf("%s: not a PNG file", path)
	}
	if string(header[12:16]) != "IHDR" {
		return 0, fmt.Errorf("%s: missing IHDR chunk", path)
	}

	width := binary.BigEndian.Uint32(header[16:20])
	if width == 0 {
		return 0, fmt.Errorf("%s: zero-width PNG", path)
	}
	return int(width), nil
}
