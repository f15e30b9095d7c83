// Command tilesetgen writes a tileset file that slices a sprite sheet into a
// grid of equally sized tiles, numbered left to right and top to bottom from 1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path"

	"github.com/milk9111/worldsaround/logging"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

type tilesetFile struct {
	Name     string     `json:"name"`
	Image    string     `json:"image"`
	TileSize [2]int     `json:"tile_size"`
	ColorKey []int      `json:"colorkey,omitempty"`
	Tiles    []tileFile `json:"tiles"`
}

type tileFile struct {
	TID    int    `json:"tid"`
	Offset [2]int `json:"offset"`
}

func main() {
	imagePath := flag.String("image", "", "sprite sheet to slice (png)")
	imageRef := flag.String("ref", "", "image path written into the tileset (defaults to images/<base of -image>)")
	name := flag.String("name", "", "tileset name (defaults to the image base name)")
	tileW := flag.Int("w", 8, "tile width in pixels")
	tileH := flag.Int("h", 8, "tile height in pixels")
	colorKey := flag.String("colorkey", "", "transparent colour as r,g,b")
	out := flag.String("o", "", "output file (defaults to stdout)")
	clip := flag.Bool("clip", false, "also copy the tileset to the clipboard")
	flag.Parse()

	logger, err := logging.New(true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		logger.Fatal("open image", zap.Error(err))
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		logger.Fatal("decode image", zap.String("image", *imagePath), zap.Error(err))
	}

	base := path.Base(*imagePath)
	if *imageRef == "" {
		*imageRef = path.Join("images", base)
	}
	if *name == "" {
		*name = base[:len(base)-len(path.Ext(base))]
	}
	key, err := parseColorKey(*colorKey)
	if err != nil {
		logger.Fatal("colorkey", zap.Error(err))
	}

	ts, err := generate(*name, *imageRef, cfg.Width, cfg.Height, *tileW, *tileH)
	if err != nil {
		logger.Fatal("generate", zap.Error(err))
	}
	ts.ColorKey = key

	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		logger.Fatal("encode", zap.Error(err))
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
	} else if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatal("write", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("tileset generated", zap.String("name", ts.Name), zap.Int("tiles", len(ts.Tiles)))

	if *clip {
		if err := clipboard.Init(); err != nil {
			logger.Fatal("clipboard", zap.Error(err))
		}
		<-clipboard.Write(clipboard.FmtText, data)
	}
}

// generate slices a w×h image into tiles of tw×th. Partial tiles at the
// right and bottom edges are dropped.
func generate(name, img string, w, h, tw, th int) (tilesetFile, error) {
	if tw <= 0 || th <= 0 {
		return tilesetFile{}, fmt.Errorf("tile size must be positive, got %dx%d", tw, th)
	}
	cols, rows := w/tw, h/th
	if cols == 0 || rows == 0 {
		return tilesetFile{}, fmt.Errorf("image %dx%d is smaller than one %dx%d tile", w, h, tw, th)
	}

	ts := tilesetFile{
		Name:     name,
		Image:    img,
		TileSize: [2]int{tw, th},
		Tiles:    make([]tileFile, 0, cols*rows),
	}
	for j := range rows {
		for i := range cols {
			ts.Tiles = append(ts.Tiles, tileFile{
				TID:    i + j*cols + 1,
				Offset: [2]int{i * tw, j * th},
			})
		}
	}
	return ts, nil
}

func parseColorKey(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("want r,g,b: %w", err)
	}
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("component %d out of range", c)
		}
	}
	return []int{r, g, b}, nil
}
