package rimage

import (
	"bufio"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"go.viam.com/depthnormal/utils"
)

// EncodeOptions tunes the lossy or compressed output codecs.
type EncodeOptions struct {
	// JPEGQuality is in [1, 100].
	JPEGQuality    int
	PNGCompression png.CompressionLevel
}

// DefaultEncodeOptions returns the options used when none are given.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		JPEGQuality:    95,
		PNGCompression: png.DefaultCompression,
	}
}

// ReadImageFromFile decodes the image at path. Every format listed in utils/mime.go is
// registered with the image package by this package's imports.
func ReadImageFromFile(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode image file %q", path)
	}
	return img, nil
}

// ReadDepthMapFromFile decodes the image at path and converts it to a depth map.
func ReadDepthMapFromFile(path string) (*DepthMap, error) {
	img, err := ReadImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return ConvertImageToDepthMap(img)
}

// EncodeImage writes img to w in the format named by mimeType.
func EncodeImage(w io.Writer, img image.Image, mimeType string, opts EncodeOptions) error {
	switch mimeType {
	case utils.MimeTypePNG:
		enc := png.Encoder{CompressionLevel: opts.PNGCompression}
		return enc.Encode(w, img)
	case utils.MimeTypeJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.JPEGQuality})
	case utils.MimeTypeTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case utils.MimeTypeBMP:
		return bmp.Encode(w, img)
	case utils.MimeTypePPM:
		return ppm.Encode(w, img)
	case utils.MimeTypeQOI:
		return qoi.Encode(w, img)
	default:
		return errors.Wrapf(utils.ErrUnsupportedFormat, "cannot encode %q", mimeType)
	}
}

// WriteImageToFile encodes img in the format implied by the extension of path. The image
// is written to a temporary file next to path and renamed into place, so path is either
// left untouched or holds the complete image.
func WriteImageToFile(path string, img image.Image, opts EncodeOptions) (err error) {
	mimeType, err := utils.MimeTypeFromPath(path)
	if err != nil {
		return err
	}
	if mimeType == utils.MimeTypeGIF {
		return errors.Wrap(utils.ErrUnsupportedFormat, "gif output is not supported")
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Combine(err, os.Remove(f.Name()))
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeImage(w, img, mimeType, opts); err != nil {
		return multierr.Combine(errors.Wrapf(err, "cannot encode %q", path), f.Close())
	}
	if err := w.Flush(); err != nil {
		return multierr.Combine(err, f.Close())
	}
	if err := f.Chmod(0o644); err != nil {
		return multierr.Combine(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
