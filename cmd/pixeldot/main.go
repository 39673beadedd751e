// Command pixeldot renders sprite spec files and inspects pixel-art PNGs.
//
// Usage:
//
//	pixeldot render [-dry-run] [-only name,name] spec.yaml
//	pixeldot info sprite.png
//	pixeldot preview [-scale n] sprite.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/sangyeon-bagelcode/pixeldot"
	"github.com/sangyeon-bagelcode/pixeldot/analysis"
	"github.com/sangyeon-bagelcode/pixeldot/imageio"
	"github.com/sangyeon-bagelcode/pixeldot/preview"
	"github.com/sangyeon-bagelcode/pixeldot/spec"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("pixeldot: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pixeldot <render|info|preview> [flags] <file>")
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		dryRun  = fs.Bool("dry-run", false, "render without writing outputs")
		only    = fs.String("only", "", "comma-separated sprite names to render")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("render needs exactly one spec file")
	}
	if *verbose {
		pixeldot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := spec.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	var names []string
	if *only != "" {
		names = strings.Split(*only, ",")
	}
	results, err := doc.Render(names...)
	if err != nil {
		return err
	}
	if *dryRun {
		log.Printf("rendered %d sprites (dry run)", len(results))
		return nil
	}
	saved, err := doc.SaveAll(results)
	if err != nil {
		return err
	}
	for _, path := range saved {
		log.Printf("wrote %s", path)
	}
	log.Printf("rendered %d sprites, wrote %d files", len(results), len(saved))
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	top := fs.Int("top", 12, "number of colors to report")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("info needs exactly one PNG file")
	}

	s, err := imageio.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("size:   %dx%d\n", s.Width(), s.Height())
	fmt.Printf("colors: %d\n", analysis.ColorCount(s))
	fmt.Printf("hash:   %s\n", analysis.PixelHash(s))
	if bounds, ok := s.OpaqueBounds(); ok {
		fmt.Printf("bounds: (%d, %d) %dx%d\n", bounds.X, bounds.Y, bounds.W, bounds.H)
	} else {
		fmt.Println("bounds: fully transparent")
	}
	for _, info := range analysis.ExtractPalette(s, *top) {
		fmt.Printf("  %-9s %6d px  %5.1f%%\n", info.Hex, info.Count, info.Percentage)
	}
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	scale := fs.Int("scale", 1, "integer upscale factor")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("preview needs exactly one PNG file")
	}

	s, err := imageio.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *scale > 1 {
		s, err = preview.ScaleNearest(s, *scale)
		if err != nil {
			return err
		}
	}
	return preview.Fprint(os.Stdout, s)
}
