/*
turmite simulates generalized Langton's-ant turmites read from a DNA
input file and prints each ant's final position. With loop detection
enabled (the default), an ant that enters a stationary orbit or a
highway is fast-forwarded to its final position analytically instead of
being stepped out to budget exhaustion.

Usage:

	turmite [-s] [-i DIR] [-c FILE] <filename>
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"turmite/config"
	"turmite/dna"
	"turmite/driver"
	"turmite/gridstore"
	"turmite/render"
	"turmite/simerr"
	"turmite/simulator"

	flag "github.com/spf13/pflag"
)

var (
	imageDir   *string
	simple     *bool
	configPath *string
)

func init() {
	imageDir = flag.StringP("image_dir", "i", "", "directory to write one PNG per ant to; implies --simple")
	simple = flag.BoolP("simple", "s", false, "disable loop detection and fast-forward")
	configPath = flag.StringP("config", "c", "", "optional YAML file overriding the recommended tuning parameters")
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: turmite [-s] [-i DIR] [-c FILE] <filename>")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if *imageDir != "" {
		if info, err := os.Stat(*imageDir); err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "No such directory: '%s'\n", *imageDir)
			os.Exit(1)
		}
	}

	tuning := config.Default()
	if *configPath != "" {
		var err error
		tuning, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config '%s': %v\n", *configPath, err)
			os.Exit(1)
		}
	}

	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File '%s' not found.\n", filename)
		os.Exit(1)
	}
	defer f.Close()

	logger := log.New(os.Stderr, "turmite: ", log.LstdFlags)

	// An image directory forces simple mode regardless of -s, since
	// fast-forward skips the grid mutations the final render depends on.
	simpleMode := *simple || *imageDir != ""

	grids, err := runAll(f, simpleMode, tuning, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	if *imageDir != "" {
		writeImages(grids, *imageDir, tuning.MaxImageDimension)
	}
}

// runAll drives the parse -> simulate loop over every block in the
// input stream, printing each ant's output contract as it completes,
// and returns each ant's grid (nil for an ant that failed) in order,
// for optional image rendering. Per-ant errors (UnknownColor,
// MalformedDNALine) are logged and do not abort the run; process-wide
// I/O errors do.
func runAll(f *os.File, simpleMode bool, tuning config.Tuning, logger *log.Logger) ([]*gridstore.GridStore, error) {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	parser := dna.New(f, func(line string) {
		fmt.Fprintln(out, line)
	})

	var grids []*gridstore.GridStore
	for {
		block, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if se, ok := err.(*simerr.Error); ok && !se.Kind.FatalToProcess() {
				logger.Printf("skipping ant: %v", err)
				grids = append(grids, nil)
				continue
			}
			return grids, err
		}

		sim := simulator.New(block.Table, block.Background, block.StepBudget, tuning.RingCapacity)
		res, err := driver.Run(sim, !simpleMode, tuning, nil)
		if err != nil {
			// UnknownColor is fatal for this ant only; no output line is
			// printed for it, matching the fact that the ant never
			// reached a final position.
			logger.Printf("skipping ant: %v", err)
			grids = append(grids, nil)
			continue
		}

		fmt.Fprintf(out, "%d\n# %d %d\n\n", block.StepBudget, res.FinalPosition.X, res.FinalPosition.Y)
		grids = append(grids, sim.Grid)
	}
	return grids, nil
}

func writeImages(grids []*gridstore.GridStore, dir string, maxDimension int) {
	for i, grid := range grids {
		if grid == nil {
			continue
		}
		path := fmt.Sprintf("%s/ant_%d.png", dir, i)
		if err := writeOne(grid, path, maxDimension); err != nil {
			fmt.Fprintf(os.Stderr, "Ant %d: %v\n", i, err)
		}
	}
}

func writeOne(grid *gridstore.GridStore, path string, maxDimension int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.Render(grid, f, maxDimension)
}
