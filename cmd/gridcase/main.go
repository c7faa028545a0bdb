// Command gridcase generates the fabrication files for a modular grid
// enclosure: one ASCII STL per printable section of the front frame
// and cell grid, plus SVG/DXF cut drawings of the front panel.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gridcase/gridcase"
	"github.com/gridcase/gridcase/drawing"
	"github.com/gridcase/gridcase/internal/config"
	"github.com/gridcase/gridcase/internal/logger"
	"github.com/gridcase/gridcase/panel"
	"github.com/gridcase/gridcase/preview"
	"github.com/gridcase/gridcase/render"
)

var (
	presetFlag  = flag.String("preset", "classic", "size preset to generate")
	configFlag  = flag.String("config", "", "optional YAML config file")
	outFlag     = flag.String("out", "out", "output directory")
	partsFlag   = flag.String("parts", "frame,grid", "comma separated parts to generate (frame, grid)")
	svgFlag     = flag.Bool("svg", true, "write the SVG cut/engrave drawing")
	dxfFlag     = flag.Bool("dxf", true, "write the DXF exchange drawing")
	previewFlag = flag.Bool("preview", false, "render a PNG preview per section")
	logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFile     = flag.String("log-file", "", "optional rotating log file")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		if err := config.LoadFile(cfg, *configFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	applyFlags(cfg)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("generation aborted", zap.Error(err))
	}
}

// applyFlags copies explicitly set flags over the config, the highest
// precedence layer.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			cfg.Preset = *presetFlag
		case "out":
			cfg.OutDir = *outFlag
		case "parts":
			cfg.Parts = strings.Split(*partsFlag, ",")
		case "svg":
			cfg.SVG = *svgFlag
		case "dxf":
			cfg.DXF = *dxfFlag
		case "preview":
			cfg.Preview = *previewFlag
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-file":
			cfg.Logging.File = *logFile
		}
	})
}

func run(cfg *config.Config) error {
	spec, plan, err := cfg.Resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	logger.Log.Info("generating",
		zap.String("preset", cfg.Preset),
		zap.Int("cols", spec.Cols), zap.Int("rows", spec.Rows),
		zap.Float64("panel_width", spec.PanelWidth()),
		zap.Float64("panel_depth", spec.PanelDepth()),
	)

	for _, part := range cfg.Parts {
		results, err := buildPart(part, spec, plan)
		if err != nil {
			return err
		}
		if err := writeResults(cfg, part, results); err != nil {
			return err
		}
	}

	if cfg.SVG {
		if err := writeSVG(cfg, spec); err != nil {
			return err
		}
	}
	if cfg.DXF {
		path := filepath.Join(cfg.OutDir, "panel.dxf")
		if err := drawing.SaveDXF(path, drawing.Params{Spec: spec}); err != nil {
			return err
		}
		logger.Log.Info("wrote drawing", zap.String("file", path))
	}
	return nil
}

func buildPart(part string, spec gridcase.GridSpec, plan gridcase.SplitPlan) ([]panel.Result, error) {
	switch part {
	case "frame":
		return panel.BuildFrame(spec, plan)
	case "grid":
		return panel.BuildCellGrid(spec, plan)
	default:
		return nil, fmt.Errorf("unknown part %q (want frame or grid)", part)
	}
}

func writeResults(cfg *config.Config, part string, results []panel.Result) error {
	fmt.Printf("%s: %d sections\n", part, len(results))
	for _, res := range results {
		path := filepath.Join(cfg.OutDir, res.Mesh.Name()+".stl")
		if err := render.CreateSTL(path, res.Mesh); err != nil {
			return fmt.Errorf("section %s: writing %s: %w", res.Section.Label(), path, err)
		}
		if n := res.Mesh.Degenerate(); n > 0 {
			logger.Log.Warn("degenerate triangles rejected",
				zap.String("section", res.Section.Label()), zap.Int("count", n))
		}
		fmt.Printf("  %-6s %5.1f x %5.1f mm  %5d triangles  %s\n",
			res.Section.Label(), res.Width, res.Depth, res.Mesh.Len(), path)
		if cfg.Preview {
			png := filepath.Join(cfg.OutDir, res.Mesh.Name()+".png")
			if err := preview.SavePNG(png, res.Mesh, 800, 600); err != nil {
				logger.Log.Warn("preview failed", zap.String("section", res.Section.Label()), zap.Error(err))
			}
		}
	}
	return nil
}

func writeSVG(cfg *config.Config, spec gridcase.GridSpec) error {
	path := filepath.Join(cfg.OutDir, "panel.svg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := drawing.WriteSVG(f, drawing.Params{Spec: spec, Name: cfg.Preset}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Log.Info("wrote drawing", zap.String("file", path))
	return nil
}
