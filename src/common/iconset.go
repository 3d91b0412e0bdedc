package common

import (
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// GenerateIconSet writes apple-touch and android PNG icons for img into dir
// and returns the written paths in order.
func GenerateIconSet(img image.Image, dir string, appleSizes, androidSizes []int) ([]string, error) {
	if len(appleSizes) == 0 && len(androidSizes) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &EncodeError{Path: dir, Err: err}
	}

	var written []string
	emit := func(prefix string, sizes []int) error {
		for _, size := range sizes {
			if size <= 0 {
				return &EncodeError{Path: dir, Err: fmt.Errorf("invalid icon size %d", size)}
			}
			path := filepath.Join(dir, fmt.Sprintf("%s-%dx%d.png", prefix, size, size))
			if err := WritePNG(path, fitSquare(img, size)); err != nil {
				return err
			}
			written = append(written, path)
		}
		return nil
	}

	if err := emit("apple-touch-icon", appleSizes); err != nil {
		return nil, err
	}
	if err := emit("android-chrome", androidSizes); err != nil {
		return nil, err
	}

	log.Printf("📱 Generated %d touch/android icons in %s", len(written), dir)
	return written, nil
}

// fitSquare scales src to fit a size x size transparent canvas, centered
func fitSquare(src image.Image, size int) *image.NRGBA {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if srcW == 0 || srcH == 0 {
		return dst
	}

	scale := math.Min(float64(size)/float64(srcW), float64(size)/float64(srcH))
	newW := max(1, int(math.Round(float64(srcW)*scale)))
	newH := max(1, int(math.Round(float64(srcH)*scale)))

	offX := (size - newW) / 2
	offY := (size - newH) / 2
	dr := image.Rect(offX, offY, offX+newW, offY+newH)
	xdraw.CatmullRom.Scale(dst, dr, src, srcBounds, xdraw.Over, nil)
	return dst
}
