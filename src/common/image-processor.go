package common

// Image processor for icon enlargement and format conversion
//
// Responsibilities:
// 1. Decode the source icon (explicit frame selection for .ico)
// 2. Center crop by a fixed fraction and resize back to the source size
// 3. Export a multi-size .ico plus an unscaled PNG preview
// 4. Convert a single .ico frame to a flat favicon PNG
// 5. Generate touch/android PNG icons (see iconset.go)

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"seedoc/src/config"
)

// MaxICOSize is the largest frame edge an ICO directory entry can describe
const MaxICOSize = 256

// ImageProcessor runs the icon transforms described by the configuration
type ImageProcessor struct {
	cfg *config.Config
}

// EnlargeResult describes the files written by Enlarge
type EnlargeResult struct {
	ContainerPath string
	PreviewPath   string
	Image         *image.NRGBA
}

// NewImageProcessor creates a new image processor
func NewImageProcessor(cfg *config.Config) *ImageProcessor {
	return &ImageProcessor{cfg: cfg}
}

// Enlarge crops the configured source icon around its center, scales the
// crop back to the original dimensions and writes the ICO and PNG preview.
// Existing outputs are overwritten.
func (p *ImageProcessor) Enlarge() (*EnlargeResult, error) {
	ic := p.cfg.Icon

	log.Printf("📂 Reading %s...", ic.Source)
	src, err := LoadImage(ic.Source, ic.Frame)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	log.Printf("✅ Source size: %dx%d", b.Dx(), b.Dy())
	p.checkSourceSize(b)

	enlarged, err := EnlargeImage(src, ic.CropFraction)
	if err != nil {
		return nil, err
	}
	log.Printf("🔍 Enlarged to %dx%d (crop fraction %.2f)", enlarged.Bounds().Dx(), enlarged.Bounds().Dy(), ic.CropFraction)

	log.Printf("💾 Writing ICO: %s", ic.OutputICO)
	if err := WriteICO(ic.OutputICO, enlarged, ic.Sizes); err != nil {
		return nil, err
	}

	if err := WritePNG(ic.OutputPreview, enlarged); err != nil {
		return nil, err
	}
	log.Printf("🖼️  Preview: %s", ic.OutputPreview)

	return &EnlargeResult{
		ContainerPath: ic.OutputICO,
		PreviewPath:   ic.OutputPreview,
		Image:         enlarged,
	}, nil
}

// ConvertFavicon writes the configured favicon frame as a flat PNG
func (p *ImageProcessor) ConvertFavicon() (image.Image, error) {
	fc := p.cfg.Favicon
	img, err := ConvertToPNG(fc.Source, fc.Output, fc.Frame)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ %s created (%dx%d)", fc.Output, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// checkSourceSize warns when the output will be upsampled
func (p *ImageProcessor) checkSourceSize(b image.Rectangle) {
	minW, minH := p.cfg.Images.MinWidth, p.cfg.Images.MinHeight
	if (minW > 0 && b.Dx() < minW) || (minH > 0 && b.Dy() < minH) {
		log.Printf("⚠️  Source %dx%d is below the minimum %dx%d", b.Dx(), b.Dy(), minW, minH)
	}

	largest := 0
	for _, size := range p.cfg.Icon.Sizes {
		largest = max(largest, size)
	}
	if b.Dx() < largest || b.Dy() < largest {
		log.Printf("⚠️  Source %dx%d will be upsampled to %dx%d", b.Dx(), b.Dy(), largest, largest)
	}
}

// CropBox returns the centered rectangle that keeps fraction of each axis.
// Edges are truncated toward zero, so the box always lies within w x h.
func CropBox(w, h int, fraction float64) image.Rectangle {
	left := int(math.Floor(float64(w) * (1 - fraction) / 2))
	top := int(math.Floor(float64(h) * (1 - fraction) / 2))
	right := int(math.Floor(float64(w) * (1 + fraction) / 2))
	bottom := int(math.Floor(float64(h) * (1 + fraction) / 2))
	return image.Rect(left, top, right, bottom)
}

// EnlargeImage crops img to CropBox and resizes the crop back to the
// original dimensions with a Lanczos filter.
func EnlargeImage(img image.Image, fraction float64) (*image.NRGBA, error) {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return nil, ErrInvalidFraction
	}

	b := img.Bounds()
	box := CropBox(b.Dx(), b.Dy(), fraction)

	// Tiny sources can truncate to an empty box; keep at least one pixel
	if box.Dx() == 0 {
		box.Max.X = min(box.Min.X+1, b.Dx())
	}
	if box.Dy() == 0 {
		box.Max.Y = min(box.Min.Y+1, b.Dy())
	}

	cropped := imaging.Crop(img, box.Add(b.Min))
	return imaging.Resize(cropped, b.Dx(), b.Dy(), imaging.Lanczos), nil
}

// EncodeICO writes img to w as an icon container holding one frame per size
func EncodeICO(w io.Writer, img image.Image, sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no icon sizes requested")
	}

	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > MaxICOSize {
			return fmt.Errorf("ICO cannot hold a %dx%d frame", size, size)
		}
		frames = append(frames, imaging.Resize(img, size, size, imaging.Lanczos))
	}

	return ico.EncodeAll(w, frames)
}

// WriteICO encodes img with EncodeICO and writes it to path
func WriteICO(path string, img image.Image, sizes []int) error {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, img, sizes); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// WritePNG writes img to path as PNG regardless of the file extension
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// ConvertToPNG decodes one frame of sourcePath and writes it unscaled to outputPath
func ConvertToPNG(sourcePath, outputPath, frame string) (image.Image, error) {
	img, err := LoadImage(sourcePath, frame)
	if err != nil {
		return nil, err
	}

	if err := WritePNG(outputPath, img); err != nil {
		return nil, err
	}
	return img, nil
}
