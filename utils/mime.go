package utils

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MimeTypePNG is regular pngs.
	MimeTypePNG = "image/png"

	// MimeTypeJPEG is regular jpgs.
	MimeTypeJPEG = "image/jpeg"

	// MimeTypeGIF is for .gif files, decode only.
	MimeTypeGIF = "image/gif"

	// MimeTypeTIFF is for .tif/.tiff files.
	MimeTypeTIFF = "image/tiff"

	// MimeTypeBMP is for .bmp files.
	MimeTypeBMP = "image/bmp"

	// MimeTypePPM is for binary .ppm "portable pixmap" files.
	MimeTypePPM = "image/x-portable-pixmap"

	// MimeTypeQOI is for .qoi "Quite OK Image" for lossless, fast encoding/decoding.
	MimeTypeQOI = "image/qoi"
)

// ErrUnsupportedFormat is returned when a file extension maps to no known image format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var extToMimeType = map[string]string{
	".png":  MimeTypePNG,
	".jpg":  MimeTypeJPEG,
	".jpeg": MimeTypeJPEG,
	".gif":  MimeTypeGIF,
	".tif":  MimeTypeTIFF,
	".tiff": MimeTypeTIFF,
	".bmp":  MimeTypeBMP,
	".ppm":  MimeTypePPM,
	".qoi":  MimeTypeQOI,
}

// MimeTypeFromPath returns the image mime type implied by the extension of path.
func MimeTypeFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := extToMimeType[ext]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q of %q", ext, path)
	}
	return mimeType, nil
}
