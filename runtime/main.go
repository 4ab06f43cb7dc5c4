package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	behaviour "GopherTrace/internal/behaviour"
	"GopherTrace/internal/config"
	"GopherTrace/internal/engine"
	"GopherTrace/internal/logger"
	"GopherTrace/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

type options struct {
	configPath   string
	preset       string
	scenePath    string
	scenePreset  string
	seed         int64
	headless     bool
	out          string
	snapshotDir  string
	exportScene  string
	exportConfig string
	orbit        float64
}

// glfw must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "JSON config file, applied over the preset")
	flag.StringVar(&opts.preset, "preset", "default", "quality preset: default, quality or performance")
	flag.StringVar(&opts.scenePath, "scene", "", "scene file (.json, .gltf or .glb)")
	flag.StringVar(&opts.scenePreset, "scene-preset", "default", "built-in scene when -scene is not set: default or field")
	flag.Int64Var(&opts.seed, "seed", 0, "sampler seed, 0 keeps the config value")
	flag.BoolVar(&opts.headless, "headless", false, "render one full frame to -out and exit")
	flag.StringVar(&opts.out, "out", "render.png", "output image for -headless")
	flag.StringVar(&opts.snapshotDir, "snapshots", ".", "directory for P key snapshots")
	flag.StringVar(&opts.exportScene, "export-scene", "", "write the loaded scene as JSON and exit")
	flag.StringVar(&opts.exportConfig, "export-config", "", "write the effective config as JSON and exit")
	flag.Float64Var(&opts.orbit, "orbit", 0, "turntable speed in radians per second around the scene's look-at point")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "gophertrace:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Preset(opts.preset)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath, cfg); err != nil {
			return err
		}
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.exportConfig != "" {
		return cfg.Save(opts.exportConfig)
	}

	var desc *scene.Description
	if opts.scenePath != "" {
		desc, err = scene.Open(opts.scenePath)
	} else {
		desc, err = scene.Preset(opts.scenePreset, cfg.Seed)
	}
	if err != nil {
		return err
	}
	if opts.exportScene != "" {
		return desc.Save(opts.exportScene)
	}

	gopher, err := engine.NewGopher(cfg)
	if err != nil {
		return err
	}
	world, err := desc.Build()
	if err != nil {
		return err
	}
	world.ApplyCamera(gopher.Camera)
	gopher.SetWorld(world.World)
	gopher.SnapshotDir = opts.snapshotDir

	if opts.orbit != 0 && !opts.headless {
		var target mgl64.Vec3
		if desc.Camera.LookAt != nil {
			target = mgl64.Vec3(*desc.Camera.LookAt)
		}
		behaviour.GlobalBehaviourManager.Add(behaviour.NewOrbit(gopher.Camera, target, opts.orbit))
	}

	if opts.headless {
		return gopher.RenderHeadless(opts.out)
	}
	logger.Log.Info("Controls: WASD move, Space/X up/down, Shift fast, Ctrl slow, left drag look, P snapshot, Esc quit",
		zap.String("scene", world.Name))
	return gopher.Render(100, 100)
}
