package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run. It can be loaded from a TOML or
// YAML file with LoadRunConfig.
type RunConfig struct {
	Title         string `toml:"title" yaml:"title"`
	Width         int    `toml:"width" yaml:"width"`
	Height        int    `toml:"height" yaml:"height"`
	Resizable     bool   `toml:"resizable" yaml:"resizable"`
	ShowFPS       bool   `toml:"show_fps" yaml:"show_fps"`
	Debug         bool   `toml:"debug" yaml:"debug"`
	Verbose       bool   `toml:"verbose" yaml:"verbose"`
	ScreenshotDir string `toml:"screenshot_dir" yaml:"screenshot_dir"`
	TestScript    string `toml:"test_script" yaml:"test_script"`
}

// DefaultRunConfig returns the settings Run uses for zero fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "arbor",
		Width:         800,
		Height:        600,
		ScreenshotDir: "screenshots",
	}
}

func (cfg RunConfig) withDefaults() RunConfig {
	def := DefaultRunConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = def.ScreenshotDir
	}
	return cfg
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed. It blocks.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	scene.ScreenshotDir = cfg.ScreenshotDir
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.Verbose {
		SetVerbose(true)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSLabel())
	}
	if cfg.TestScript != "" {
		runner, err := LoadTestScriptFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("arbor: run: %w", err)
		}
		scene.SetTestRunner(runner)
	}
	scene.Layout(cfg.Width, cfg.Height)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	guiLogger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(&game{scene: scene}); err != nil {
		return fmt.Errorf("arbor: run: %w", err)
	}
	return nil
}
