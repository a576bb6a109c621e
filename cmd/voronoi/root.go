package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/config"
	"github.com/gogpu/voronoi/internal/dump"
	"github.com/gogpu/voronoi/internal/palette"
	"github.com/gogpu/voronoi/internal/preview"
	"github.com/gogpu/voronoi/internal/render"
	"github.com/gogpu/voronoi/internal/seedfile"
)

type options struct {
	multithreading bool
	debugSteps     bool
	imageOnly      bool
	preview        bool
	configPath     string
	workers        int
	scale          int
	format         string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "voronoi INPUT",
		Short: "Generate a discrete Voronoi diagram from a seed file",
		Long: `voronoi reads a grid size and a list of seed points, labels every grid
cell with its nearest seed, and writes the labeling as an image.

The input file is looked up in the data directory and has the form:

  <X> <Y>
  <N>
  <x> <y>   (N lines)

Outputs are named after the input's base name only: <output>/<base>.<format>
and <output>/debug_<base>/. Two inputs with the same base name write to the
same files.`,
		Version:      voronoi.Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.multithreading, "multithreading", "m", false, "use the parallel jump-flood engine")
	f.BoolVarP(&opts.debugSteps, "debug-steps", "d", false, "write an image for every intermediate step")
	f.BoolVarP(&opts.imageOnly, "image-only", "i", false, "do not print the id matrix")
	f.BoolVar(&opts.preview, "preview", false, "show the result in the terminal")
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.IntVar(&opts.workers, "workers", 0, "jump-flood worker count (0 = one per CPU)")
	f.IntVar(&opts.scale, "scale", render.DefaultScale, "pixels per grid cell")
	f.StringVar(&opts.format, "format", string(render.PNG), "image format: png, bmp or tiff")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

// loadConfig reads the config file, if any, and applies explicitly set flags
// on top.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if f.Changed("scale") {
		cfg.Scale = opts.scale
	}
	if f.Changed("format") {
		cfg.Format = opts.format
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, stdout, stderr io.Writer, cfg config.Config, opts options, name string) error {
	log := newLogger(stderr, cfg.Logging.Level).With("run", uuid.NewString())
	voronoi.SetLogger(log)
	defer voronoi.SetLogger(nil)

	path := resolveInput(cfg.DataDir, name)
	log.Info("using data file", "path", path)
	in, err := seedfile.Load(path)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cfg.PaletteSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.PaletteSeed))
	}
	colors := palette.Generate(len(in.Seeds), rng)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Base(name)
	eo := voronoi.Options{Parallel: opts.multithreading, Workers: cfg.Workers}
	if opts.debugSteps {
		snap := &render.Snapshotter{
			Dir:    filepath.Join(cfg.OutputDir, "debug_"+base),
			Format: format,
			Colors: colors,
			Scale:  cfg.Scale,
		}
		if err := render.PrepareDir(snap.Dir); err != nil {
			return err
		}
		eo.Snapshot = snap.Write
		log.Info("writing debug snapshots", "dir", snap.Dir)
	}

	g, stats, err := voronoi.Tessellate(ctx, in.Size, in.Seeds, eo)
	if err != nil {
		return err
	}

	img, err := render.Image(g, colors, cfg.Scale)
	if err != nil {
		return err
	}
	out := filepath.Join(cfg.OutputDir, base+format.Ext())
	if err := render.Save(out, img); err != nil {
		return err
	}
	log.Info("image written", "path", out, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if !opts.imageOnly {
		if err := dump.Write(stdout, g); err != nil {
			return fmt.Errorf("write id matrix: %w", err)
		}
	}

	if opts.preview {
		status := fmt.Sprintf("%s  %dx%d  %d seeds  %d rounds  (q to quit)",
			base, in.Size.X, in.Size.Y, len(in.Seeds), stats.Rounds)
		return preview.Show(g, colors, status)
	}
	return nil
}

// resolveInput prefers <dataDir>/name and falls back to name itself when
// only that exists.
func resolveInput(dataDir, name string) string {
	p := filepath.Join(dataDir, name)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return p
}
