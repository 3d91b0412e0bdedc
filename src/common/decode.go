package common

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"seedoc/src/config"
)

// ICONDIR header of an icon (type 1) container
var icoMagic = []byte{0x00, 0x00, 0x01, 0x00}

// LoadImage reads an image file and returns a single raster.
// ICO containers are reduced to one frame according to frame
// ("largest" or "first"); any other format goes through imaging.
func LoadImage(path, frame string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	img, err := DecodeImage(data, frame)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return img, nil
}

// DecodeImage decodes raw image bytes, see LoadImage
func DecodeImage(data []byte, frame string) (image.Image, error) {
	if !bytes.HasPrefix(data, icoMagic) {
		return imaging.Decode(bytes.NewReader(data))
	}

	frames, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return SelectFrame(frames, frame)
}

// SelectFrame picks one frame out of a decoded icon container.
// Ties on area keep the earlier frame.
func SelectFrame(frames []image.Image, mode string) (image.Image, error) {
	if len(frames) == 0 {
		return nil, errors.New("icon contains no frames")
	}

	switch mode {
	case config.FrameFirst:
		return frames[0], nil
	case config.FrameLargest:
		best := frames[0]
		for _, f := range frames[1:] {
			if area(f) > area(best) {
				best = f
			}
		}
		return best, nil
	default:
		return nil, fmt.Errorf("unknown frame mode %q", mode)
	}
}

func area(img image.Image) int {
	b := img.Bounds()
	return b.Dx() * b.Dy()
}
