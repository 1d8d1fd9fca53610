package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/displaylayout/pkg/scene"
)

const renderUsage = "gridlayout render <layout.yaml> [-o out.png] [--scale N] [--smooth]"

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a layout file to PNG",
		Long: `Render builds the layout file and writes the display frame as a PNG.

Flags:
  -o, --output PATH  Output file (default: the layout name with .png)
  --scale N          Upsample the frame by an integer factor (default: 1)
  --smooth           Use bilinear filtering when scaling

Small displays are easier to review scaled up, for example --scale 4.`,
		Usage: renderUsage,
		Run:   runRender,
	})
}

type renderOptions struct {
	layout string
	output string
	scale  int
	smooth bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{scale: 1}
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", arg)
			}
			opts.output = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			opts.output = strings.TrimPrefix(arg, "--output=")
		case arg == "--scale":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scale requires a factor")
			}
			if err := opts.setScale(args[i+1]); err != nil {
				return opts, err
			}
			i++
		case strings.HasPrefix(arg, "--scale="):
			if err := opts.setScale(strings.TrimPrefix(arg, "--scale=")); err != nil {
				return opts, err
			}
		case arg == "--smooth":
			opts.smooth = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %s\n\nUsage: %s", arg, renderUsage)
		default:
			positional = append(positional, arg)
		}
	}

	path, err := layoutPath(positional, renderUsage)
	if err != nil {
		return opts, err
	}
	opts.layout = path
	if opts.output == "" {
		opts.output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	return opts, nil
}

func (o *renderOptions) setScale(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fmt.Errorf("--scale must be a positive integer, got %q", v)
	}
	o.scale = n
	return nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	screen, err := loadScreen(opts.layout)
	if err != nil {
		return err
	}
	frame, err := screen.Render()
	if err != nil {
		return err
	}
	var img image.Image = frame
	if opts.scale > 1 {
		if img, err = scene.Scale(frame, opts.scale, opts.smooth); err != nil {
			return err
		}
	}

	if err := writePNG(opts.output, img); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", opts.output, b.Dx(), b.Dy())
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
