// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/internal/config"
	"github.com/gogpu/annotate/script"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Replay a gesture script over an image and write the result",
	Long: `Replay a gesture script over an image and write the result.

The input may be PNG, JPEG, GIF or WebP. The output format follows the
extension of --output: .jpg and .jpeg write JPEG, anything else PNG.

Examples:
  annotate render -i screenshot.png -s gestures.yaml -o annotated.png
  annotate render -i photo.jpg -s arrows.yaml -c tools.yaml --selection -o preview.png
  annotate render -i page.png --stamp logo.png --stamp-at 20,20 -o stamped.png
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		imagePath, _ := cmd.Flags().GetString("image")
		scriptPath, _ := cmd.Flags().GetString("script")
		configPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")
		withSelection, _ := cmd.Flags().GetBool("selection")
		stampPath, _ := cmd.Flags().GetString("stamp")
		stampAt, _ := cmd.Flags().GetFloat64Slice("stamp-at")

		settings, err := config.Load(configPath)
		if err != nil {
			return err
		}
		img, err := decodeImage(imagePath)
		if err != nil {
			return err
		}

		area := annotate.NewArea(settings)
		area.LoadImage(img)
		if area.Bounds().Empty() {
			return fmt.Errorf("image %s is empty", imagePath)
		}

		if stampPath != "" {
			if len(stampAt) != 2 {
				return fmt.Errorf("--stamp-at needs x,y, got %v", stampAt)
			}
			stamp, err := decodeImage(stampPath)
			if err != nil {
				return err
			}
			area.InsertImageItem(gg.Pt(stampAt[0], stampAt[1]), stamp)
		}

		if scriptPath != "" {
			sc, err := script.Load(scriptPath)
			if err != nil {
				return err
			}
			if err := sc.Run(area, settings); err != nil {
				return err
			}
		}

		var out image.Image
		if withSelection {
			out, err = area.Render()
		} else {
			out, err = area.Image()
		}
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := encodeImage(output, out); err != nil {
			return err
		}

		b := out.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d items)\n", output, b.Dx(), b.Dy(), len(area.Items()))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("image", "i", "", "input image")
	renderCmd.Flags().StringP("script", "s", "", "gesture script (YAML)")
	renderCmd.Flags().StringP("output", "o", "annotated.png", "output image")
	renderCmd.Flags().Bool("selection", false, "keep the selection decoration in the output")
	renderCmd.Flags().String("stamp", "", "image pasted as an item before the script runs")
	renderCmd.Flags().Float64Slice("stamp-at", []float64{0, 0}, "top-left corner of --stamp as x,y")
	_ = renderCmd.MarkFlagRequired("image")
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	annotate.Logger().Debug("decoded image", "path", path, "format", format)
	return img, nil
}

func encodeImage(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
