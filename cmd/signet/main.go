package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/TheBitDrifter/signet"
	"github.com/TheBitDrifter/signet/components"
	"github.com/TheBitDrifter/signet/internal/config"
	"github.com/TheBitDrifter/signet/persist"
	"github.com/TheBitDrifter/signet/render"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/signet.toml"
	if p := os.Getenv("SIGNET_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	signet.Config.SetLogger(log)

	world := signet.Factory.NewWorld()
	kinds, err := components.Register(world)
	if err != nil {
		return err
	}
	if err := populate(world, kinds, cfg, log); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g := newGame(screen, world, kinds, cfg, log)
	return g.loop()
}

// populate loads the save when configured to and falls back to the spawn list.
func populate(world *signet.World, kinds components.Kinds, cfg *config.Config, log *zap.Logger) error {
	if cfg.Save.LoadOnStart {
		err := persist.Load(cfg.Save.Path, world, components.Codecs(), log)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Info("no save found, spawning", zap.String("path", cfg.Save.Path))
	}
	for i, s := range cfg.Spawn {
		pos, err := components.NewPosition(kinds.Position, s.X, s.Y)
		if err != nil {
			return fmt.Errorf("spawn[%d]: %w", i, err)
		}
		fg := components.DefaultForeground
		if s.Foreground != nil {
			fg = *s.Foreground
		}
		if _, err := world.Spawn(pos, components.NewRenderable(kinds.Renderable, s.Glyph, fg)); err != nil {
			return fmt.Errorf("spawn[%d]: %w", i, err)
		}
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

// ── Game loop ─────────────────────────────────────────────────────

type game struct {
	screen tcell.Screen
	world  *signet.World
	kinds  components.Kinds
	cfg    *config.Config
	log    *zap.Logger

	origin render.Origin
	status string
}

func newGame(screen tcell.Screen, world *signet.World, kinds components.Kinds, cfg *config.Config, log *zap.Logger) *game {
	w, h := screen.Size()
	return &game{
		screen: screen,
		world:  world,
		kinds:  kinds,
		cfg:    cfg,
		log:    log,
		origin: render.Centered(w, h-1),
		status: "arrows: pan  s: save  l: load  q: quit",
	}
}

func (g *game) loop() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(g.cfg.Game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := g.handle(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			if err := g.update(); err != nil {
				return err
			}
		}
	}
}

func (g *game) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		step := g.cfg.Game.PanStep
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyUp:
			g.origin = g.origin.Pan(0, -step)
		case tcell.KeyDown:
			g.origin = g.origin.Pan(0, step)
		case tcell.KeyLeft:
			g.origin = g.origin.Pan(-step, 0)
		case tcell.KeyRight:
			g.origin = g.origin.Pan(step, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case 's':
				g.save()
			case 'l':
				g.load()
			}
		}
	}
	return false, nil
}

func (g *game) save() {
	if err := persist.Save(g.cfg.Save.Path, g.world, g.log); err != nil {
		g.log.Error("save failed", zap.Error(err))
		g.status = "save failed: " + err.Error()
		return
	}
	g.status = fmt.Sprintf("saved %d entities", g.world.Scene().Len())
}

func (g *game) load() {
	if err := persist.Load(g.cfg.Save.Path, g.world, components.Codecs(), g.log); err != nil {
		g.log.Error("load failed", zap.Error(err))
		g.status = "load failed: " + err.Error()
		return
	}
	g.status = fmt.Sprintf("loaded %d entities", g.world.Scene().Len())
}

func (g *game) update() error {
	g.screen.Clear()
	if _, err := render.Update(g.world.Scene(), g.kinds, g.screen, g.origin); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	g.drawStatus()
	g.screen.Show()
	return nil
}

func (g *game) drawStatus() {
	w, h := g.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	line := []rune(fmt.Sprintf(" (%d, %d)  %s", g.origin.X, g.origin.Y, g.status))
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		g.screen.SetContent(x, h-1, ch, nil, style)
	}
}
