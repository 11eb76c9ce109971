// Package normalmap converts depth maps into tangent-space normal maps.
//
// A conversion estimates the depth gradient with 3x3 Sobel kernels (edges replicated),
// turns each gradient (dx, dy) into the unit normal of (-dx, -dy, 1), and packs the
// normal from [-1, 1] into 8-bit color, stored B, G, R.
package normalmap

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"go.viam.com/depthnormal/logging"
	"go.viam.com/depthnormal/rimage"
)

// ErrInputDecode matches, via errors.Is, every *InputDecodeError.
var ErrInputDecode = errors.New("could not read the depth map image file")

// InputDecodeError is returned when the depth map file cannot be decoded.
type InputDecodeError struct {
	Path string
	Err  error
}

func (e *InputDecodeError) Error() string {
	return fmt.Sprintf("%s at %s: %v", ErrInputDecode, e.Path, e.Err)
}

func (e *InputDecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInputDecode.
func (e *InputDecodeError) Is(target error) bool {
	return target == ErrInputDecode
}

// DepthToNormalMap converts a single decoded depth map. It holds no state beyond its
// input, so Convert and NormalMap may be called any number of times.
type DepthToNormalMap struct {
	depthMap      *rimage.DepthMap
	maxDepth      int
	encodeOptions rimage.EncodeOptions
	logger        logging.Logger
}

// Option configures a DepthToNormalMap.
type Option func(d *DepthToNormalMap)

// WithMaxDepth records the maximum depth value of the input. It does not change the
// conversion.
func WithMaxDepth(maxDepth int) Option {
	return func(d *DepthToNormalMap) {
		d.maxDepth = maxDepth
	}
}

// WithLogger sets the logger; by default nothing is logged.
func WithLogger(logger logging.Logger) Option {
	return func(d *DepthToNormalMap) {
		d.logger = logger
	}
}

// WithEncodeOptions sets the options used by the output codec.
func WithEncodeOptions(opts rimage.EncodeOptions) Option {
	return func(d *DepthToNormalMap) {
		d.encodeOptions = opts
	}
}

// NewDepthToNormalMap decodes the depth map at depthMapPath. Decode failures are returned
// as *InputDecodeError before any conversion work.
func NewDepthToNormalMap(depthMapPath string, opts ...Option) (*DepthToNormalMap, error) {
	d := newDepthToNormalMap(opts)
	start := time.Now()
	dm, err := rimage.ReadDepthMapFromFile(depthMapPath)
	if err != nil {
		return nil, &InputDecodeError{Path: depthMapPath, Err: err}
	}
	minDepth, maxDepth := dm.MinMax()
	d.logger.Debugw("decoded depth map",
		"path", depthMapPath, "width", dm.Width(), "height", dm.Height(),
		"min", minDepth, "max", maxDepth, "took", time.Since(start))
	d.depthMap = dm
	return d, nil
}

// NewDepthToNormalMapFromDepthMap wraps an already decoded depth map. It fails with
// rimage.ErrShape if dm is nil or empty.
func NewDepthToNormalMapFromDepthMap(dm *rimage.DepthMap, opts ...Option) (*DepthToNormalMap, error) {
	if err := dm.Validate(); err != nil {
		return nil, err
	}
	d := newDepthToNormalMap(opts)
	d.depthMap = dm
	return d, nil
}

func newDepthToNormalMap(opts []Option) *DepthToNormalMap {
	d := &DepthToNormalMap{
		maxDepth:      DefaultMaxDepth,
		encodeOptions: rimage.DefaultEncodeOptions(),
		logger:        logging.NewBlankLogger("normalmap"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DepthMap returns the input depth map.
func (d *DepthToNormalMap) DepthMap() *rimage.DepthMap {
	return d.depthMap
}

// MaxDepth returns the configured maximum depth.
func (d *DepthToNormalMap) MaxDepth() int {
	return d.maxDepth
}

// Normals returns the unit surface normal of every pixel.
func (d *DepthToNormalMap) Normals() *rimage.NormalField {
	return rimage.NormalsFromGradients(rimage.SobelGradients(d.depthMap))
}

// NormalMap runs the whole conversion in memory.
func (d *DepthToNormalMap) NormalMap() *rimage.NormalMap {
	return rimage.EncodeNormals(d.Normals())
}

// Convert converts the depth map and writes the normal map to outputPath, in the format
// implied by its extension. Nothing is written if any step fails.
func (d *DepthToNormalMap) Convert(ctx context.Context, outputPath string) error {
	d.logger.Debugw("max_depth is accepted but not used by the conversion", "max_depth", d.maxDepth)

	start := time.Now()
	gradients := rimage.SobelGradients(d.depthMap)
	d.logger.Debugw("estimated gradients", "took", time.Since(start))
	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	normals := rimage.NormalsFromGradients(gradients)
	d.logger.Debugw("reconstructed normals", "took", time.Since(start))
	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	normalMap := rimage.EncodeNormals(normals)
	d.logger.Debugw("encoded normals", "took", time.Since(start))
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := rimage.WriteImageToFile(outputPath, normalMap.ToRGBA(), d.encodeOptions); err != nil {
		return errors.Wrapf(err, "cannot write normal map to %s", outputPath)
	}
	d.logger.Infow("wrote normal map", "path", outputPath,
		"width", normalMap.Bounds().Dx(), "height", normalMap.Bounds().Dy())
	return nil
}

// Run validates cfg, decodes its input and writes the normal map to its output path.
func Run(ctx context.Context, cfg Config, logger logging.Logger) error {
	if err := cfg.Validate("normalmap"); err != nil {
		return err
	}
	converter, err := NewDepthToNormalMap(cfg.InputPath, WithMaxDepth(cfg.MaxDepth), WithLogger(logger))
	if err != nil {
		return err
	}
	return converter.Convert(ctx, cfg.OutputPath)
}
