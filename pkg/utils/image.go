package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

// ScaleImage returns img scaled up by the given integer factor
// with nearest-neighbour sampling, keeping the pixels crisp.
func ScaleImage(img image.Image, factor int) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// CopyImage places img on the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, b.Bytes())
	return nil
}

// SaveImage asks the user where to save img and writes it as a
// PNG.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Screenshot").Save()
	if err != nil {
		return err
	}
	if !strings.HasSuffix(filename, ".png") {
		filename += ".png"
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
