// Command swrdemo renders a turntable scene with the swr software
// rasterizer and writes the frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/mesh"
	"github.com/gogpu/swr/render"
	"github.com/gogpu/swr/shading/lambert"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("swrdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("swrdemo", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML or TOML config file")
		output     = fs.String("output", "", "output file")
		width      = fs.Int("width", 0, "image width")
		height     = fs.Int("height", 0, "image height")
		frames     = fs.Int("frames", 0, "number of frames")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	swr.SetLogger(logger)

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	return renderFrames(&cfg)
}

func renderFrames(cfg *Config) error {
	scene, release, err := buildScene(cfg)
	if err != nil {
		return err
	}
	defer release()

	renderer := render.NewRenderer(render.WithShadowMap(cfg.ShadowMapSize))
	defer renderer.Release()

	fb := swr.NewFramebuffer(cfg.Width, cfg.Height)
	defer fb.Release()

	var opts []swr.ImageOption
	if cfg.SRGB {
		opts = append(opts, swr.WithSRGBEncoding())
	}

	pb := progressbar.Default(int64(cfg.Frames), "rendering")
	defer pb.Close()

	for i := range cfg.Frames {
		scene.Time = float32(i) * cfg.FrameTime
		if err := renderer.Render(fb, scene); err != nil {
			return fmt.Errorf("swrdemo: frame %d: %w", i, err)
		}
		if err := fb.SavePNG(cfg.FramePath(i), opts...); err != nil {
			return err
		}
		_ = pb.Add(1)
	}

	slog.Info("demo saved", "output", cfg.FramePath(0), "frames", cfg.Frames,
		"width", cfg.Width, "height", cfg.Height)
	return nil
}

// buildScene creates a ground plane and a spinning cube. The returned
// function releases the models and texture.
func buildScene(cfg *Config) (*render.Scene, func(), error) {
	cubeMaterial := lambert.DefaultMaterial()
	cubeMaterial.BaseColor = mgl32.Vec4{0.9, 0.45, 0.2, 1}

	var texture *swr.Texture
	if cfg.Texture != "" {
		var err error
		if texture, err = swr.LoadTexture(cfg.Texture, swr.UsageColor); err != nil {
			return nil, nil, err
		}
		cubeMaterial.BaseColor = mgl32.Vec4{1, 1, 1, 1}
		cubeMaterial.DiffuseMap = texture
	}

	groundMaterial := lambert.DefaultMaterial()
	groundMaterial.BaseColor = mgl32.Vec4{0.6, 0.65, 0.7, 1}
	ground := lambert.NewModel(mesh.Grid(6, 24), mgl32.Ident4(), groundMaterial)

	cube := lambert.NewModel(mesh.Cube(1), mgl32.Translate3D(0, 0.5, 0), cubeMaterial)
	cube.Spin = cfg.Spin

	scene := render.NewScene()
	scene.Camera = render.Camera{
		Position: cfg.Camera.Position,
		Target:   cfg.Camera.Target,
		FovY:     mgl32.DegToRad(cfg.Camera.FovY),
		Aspect:   float32(cfg.Width) / float32(cfg.Height),
		Near:     0.1,
		Far:      100,
	}
	scene.Light = render.Light{
		Direction: cfg.Light.Direction,
		Ambient:   cfg.Light.Ambient,
		Punctual:  cfg.Light.Punctual,
		Extent:    cfg.Light.Extent,
	}
	scene.Add(ground)
	scene.Add(cube)

	release := func() {
		ground.Release()
		cube.Release()
		if texture != nil {
			texture.Release()
		}
	}
	return scene, release, nil
}
