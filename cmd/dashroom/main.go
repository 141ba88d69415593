package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/dash-arena/audio"
	"github.com/lixenwraith/dash-arena/config"
	"github.com/lixenwraith/dash-arena/engine"
	"github.com/lixenwraith/dash-arena/input"
	"github.com/lixenwraith/dash-arena/logging"
	"github.com/lixenwraith/dash-arena/parameter"
	"github.com/lixenwraith/dash-arena/render"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config overriding the embedded defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to -log")
	logFlag    = flag.String("log", "", "Debug log path (default logs/dashroom.log)")
	seedFlag   = flag.Uint64("seed", 0, "Simulation seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

// Game wires the simulation to the terminal and the speaker
type Game struct {
	screen   tcell.Screen
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *status.Registry
	world    *engine.World
	out      *engine.Output
	renderer *render.Renderer
	input    *input.Machine
	sound    *audio.SoundManager
	seed     uint64
}

func NewGame(screen tcell.Screen, cfg *config.Config, logger *zap.Logger, seed uint64) *Game {
	w, h := screen.Size()
	g := &Game{
		screen:   screen,
		cfg:      cfg,
		logger:   logger,
		out:      engine.NewOutput(),
		renderer: render.NewRenderer(parameter.CameraFOV, w, h, seed),
		input:    input.NewMachine(),
		sound:    audio.NewSoundManager(),
		seed:     seed,
	}
	g.restart()
	return g
}

// restart builds a fresh world, reusing the seed sequence
func (g *Game) restart() {
	g.metrics = status.NewRegistry()
	g.world = engine.New(g.cfg, g.seed, g.logger, g.metrics)
	g.seed++
	g.input.Reset()
	g.out.Particles.Drain()
	g.out.Events.Drain()
}

// handleInput returns false when the game should quit
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	intent := g.input.Process(ev, now)
	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentRestart:
		if g.world.Dead() {
			g.logger.Info("restart")
			g.restart()
		}
	case input.IntentToggleMute:
		g.sound.SetMuted(!g.sound.Muted())
	case input.IntentToggleStats:
		g.renderer.ShowStats = !g.renderer.ShowStats
	case input.IntentResize:
		w, h := g.screen.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
	}
	return true
}

// tick advances the simulation and routes its output
func (g *Game) tick(now time.Time) {
	controls := engine.Controls{MoveDir: g.input.MoveDir(now)}
	if x, y, ok := g.input.Cursor(); ok {
		p := g.renderer.ScreenToWorld(x, y)
		controls.Drawing = &p
	}

	g.world.Update(controls, parameter.TickInterval, g.out)

	g.renderer.Ingest(g.out.Particles.Drain(), parameter.TickInterval)
	g.sound.Dispatch(g.out.Events.Drain())

	g.renderer.Draw(g.screen, g.world.Snapshot(), g.metrics)
	if g.world.Dead() {
		g.drawBanner("DEAD  r to restart  esc to quit")
	}
	g.screen.Show()
}

func (g *Game) drawBanner(text string) {
	w, h := g.screen.Size()
	x := max(0, (w-len(text))/2)
	style := tcell.StyleDefault.Foreground(render.RgbEnemyFull).Bold(true)
	for i, ch := range text {
		g.screen.SetContent(x+i, h/2, ch, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.tick(now)
		}
	}
}

// options are the parsed command-line flags
type options struct {
	configPath string
	debug      bool
	logPath    string
	seed       uint64
	mute       bool
}

func main() {
	flag.Parse()
	os.Exit(run(options{
		configPath: *configFlag,
		debug:      *debugFlag,
		logPath:    *logFlag,
		seed:       *seedFlag,
		mute:       *muteFlag,
	}, tcell.NewScreen))
}

// run owns every deferred cleanup and returns the process exit code
func run(opts options, newScreen func() (tcell.Screen, error)) (code int) {
	logger, closeLog, err := logging.Setup(opts.debug, opts.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			logger.Error("load config", zap.String("path", opts.configPath), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := newScreen()
	if err != nil {
		logger.Error("create screen", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		logger.Error("init terminal", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crash", zap.Any("panic", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDASHROOM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	game := NewGame(screen, cfg, logger, seed)
	if err := game.sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without audio", zap.Error(err))
	}
	game.sound.SetMuted(opts.mute)
	defer game.sound.Cleanup()

	logger.Info("start", zap.Uint64("seed", seed), zap.Float64("fov", vmath.ToFloat(parameter.CameraFOV)))
	game.run()
	screen.Fini()
	return 0
}
