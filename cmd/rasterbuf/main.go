// Command rasterbuf inspects, diffs, and converts raster images through the
// pixel-buffer core.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/TongZhai/rasterbuf/internal/imgload"
	"github.com/TongZhai/rasterbuf/pixbuf"
	"github.com/TongZhai/rasterbuf/raster"
)

type InfoCmd struct {
	Path string `arg:"" help:"Image file to inspect." type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	info, err := imgload.Describe(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d %s, alpha=%t, %d bytes\n",
		filepath.Base(c.Path), info.Width, info.Height, info.Format, info.HasAlpha, info.FileSizeBytes)
	return nil
}

type DiffCmd struct {
	A           string `arg:"" help:"Baseline image." type:"existingfile"`
	B           string `arg:"" help:"Image to compare against the baseline." type:"existingfile"`
	Out         string `short:"o" default:"diff.png" help:"Output path for the difference image (PNG)."`
	IgnoreAlpha bool   `help:"Force the difference image fully opaque instead of differencing the alpha channel."`
	Resize      bool   `help:"Resize the second image to the baseline's dimensions before diffing."`
}

func (c *DiffCmd) Run() error {
	imgA, _, err := imgload.Open(c.A)
	if err != nil {
		return err
	}
	imgB, _, err := imgload.Open(c.B)
	if err != nil {
		return err
	}
	if c.Resize {
		ab := imgA.Bounds()
		imgB = imaging.Resize(imgB, ab.Dx(), ab.Dy(), imaging.Lanczos)
	}

	bufA, err := pixbuf.FromRaster(raster.FromImage(imgA))
	if err != nil {
		return fmt.Errorf("load baseline into buffer: %w", err)
	}
	defer bufA.Close()
	bufB, err := pixbuf.FromRaster(raster.FromImage(imgB))
	if err != nil {
		return fmt.Errorf("load comparison into buffer: %w", err)
	}
	defer bufB.Close()

	diff := bufA.Difference(bufB, c.IgnoreAlpha)
	stats := pixbuf.DiffStats(bufA, bufB)

	if err := imgio.Save(c.Out, diff.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save difference image: %w", err)
	}

	slog.Info("difference written",
		"out", c.Out,
		"size", fmt.Sprintf("%dx%d", diff.Width(), diff.Height()),
		"changed", stats.Changed,
		"total", stats.Total,
		"ratio", fmt.Sprintf("%.4f", stats.Ratio),
		"mean_lab", fmt.Sprintf("%.4f", stats.MeanDistanceLab),
	)
	return nil
}

type ConvertCmd struct {
	In  string `arg:"" help:"Source image." type:"existingfile"`
	Out string `arg:"" help:"Destination image; format chosen by extension (png, jpg, bmp)."`
}

func (c *ConvertCmd) Run() error {
	img, err := imgio.Open(c.In)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}

	// Round trip through the raster bridge so the output carries the
	// buffer's canonical bytes.
	buf, err := pixbuf.FromRaster(raster.FromImage(img))
	if err != nil {
		return fmt.Errorf("load image into buffer: %w", err)
	}
	defer buf.Close()
	r, err := buf.ToRaster()
	if err != nil {
		return fmt.Errorf("restore raster: %w", err)
	}
	out, err := r.(*raster.MemoryRaster).Image()
	if err != nil {
		return fmt.Errorf("restore raster: %w", err)
	}

	enc, err := encoderFor(c.Out)
	if err != nil {
		return err
	}
	if err := imgio.Save(c.Out, out, enc); err != nil {
		return fmt.Errorf("save converted image: %w", err)
	}
	slog.Info("converted", "in", c.In, "out", c.Out)
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(90), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

var cli struct {
	Info    InfoCmd    `cmd:"" help:"Print dimensions and metadata of an image file."`
	Diff    DiffCmd    `cmd:"" help:"Compute a per-channel absolute difference image."`
	Convert ConvertCmd `cmd:"" help:"Re-encode an image through the pixel-buffer round trip."`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx := kong.Parse(&cli,
		kong.Name("rasterbuf"),
		kong.Description("Byte-level ARGB pixel buffer tools: inspect, diff, and convert raster images."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
