package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/audio"
	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/game"
	"github.com/jamesEmerson112/Valentine-2026/engine/input"
	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
	"github.com/jamesEmerson112/Valentine-2026/engine/render"
	"github.com/jamesEmerson112/Valentine-2026/engine/roster"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	volumeStep = 0.1
)

// Game implements ebiten.Game
type Game struct {
	engine     *game.Engine
	defenders  []*core.Defender
	input      *input.InputState
	translator *input.Translator
	renderer   *render.Renderer
	clock      *core.FrameClock
	eventBus   *core.EventBus
	mixer      *audio.Mixer
	store      *roster.Store
	log        logrus.FieldLogger

	width, height float64
}

func NewGame(eng *game.Engine, defenders []*core.Defender, mixer *audio.Mixer, store *roster.Store) *Game {
	g := &Game{
		engine:     eng,
		defenders:  defenders,
		input:      input.NewInputState(),
		translator: input.NewTranslator(),
		renderer:   render.NewRenderer(),
		clock:      core.NewFrameClock(core.DefaultMaxFrameDelta),
		eventBus:   core.NewEventBus(),
		mixer:      mixer,
		store:      store,
		log:        logger.Log.WithField("component", "game"),
		width:      ScreenWidth,
		height:     ScreenHeight,
	}
	g.renderer.HUD.BloomDuration = eng.Config().Flower.BloomDuration
	g.renderer.HUD.ThreatRadius = eng.Config().Agent.AggroRadius

	g.eventBus.OnAny(func(e core.Event) { g.mixer.Handle(e) })
	g.eventBus.On(core.EvtWaveStart, func(e core.Event) {
		g.log.WithField("wave", e.Stage+1).Debug("wave incoming")
	})
	outcome := func(e core.Event) {
		g.log.WithFields(logrus.Fields{
			"outcome":   e.Type,
			"encounter": g.engine.EncounterID(),
			"time":      render.FormatClock(e.Time),
		}).Info("encounter over")
		g.saveRoster()
	}
	g.eventBus.On(core.EvtVictory, outcome)
	g.eventBus.On(core.EvtDefeat, outcome)
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	g.handleKeys()

	gesture := g.input.Poll(g.translator, g.defenders)
	switch gesture.Kind {
	case input.GestureTap:
		g.engine.HandleTapRat(gesture.X, gesture.Y)
	case input.GestureCommand:
		g.engine.QueueCommand(gesture.Command())
	case input.GestureScare:
		if n := g.engine.ScareAt(gesture.X, gesture.Y); n > 0 {
			g.log.WithField("rats", n).Debug("scared")
		}
	}

	dt := g.clock.Step(time.Now())
	g.eventBus.Emit(g.engine.Update(dt, g.width, g.height, g.defenders)...)
	g.eventBus.Dispatch()
	return nil
}

func (g *Game) handleKeys() {
	in := g.input
	switch {
	case in.IsKeyJustPressed(ebiten.KeySpace), in.IsKeyJustPressed(ebiten.KeyEnter):
		if g.engine.Phase() != core.PhasePlaying {
			g.engine.StartGame(g.width, g.height)
			g.clock.Reset()
		}
	case in.IsKeyJustPressed(ebiten.KeyR):
		g.engine.ResetGame()
	case in.IsKeyJustPressed(ebiten.KeyD):
		g.engine.SetDebug(!g.engine.Debug())
	case in.IsKeyJustPressed(ebiten.KeyM):
		g.mixer.Muted = !g.mixer.Muted
	case in.IsKeyJustPressed(ebiten.KeyMinus):
		g.mixer.SetVolume(g.mixer.MasterVolume - volumeStep)
	case in.IsKeyJustPressed(ebiten.KeyEqual):
		g.mixer.SetVolume(g.mixer.MasterVolume + volumeStep)
	case in.IsKeyJustPressed(ebiten.KeyG):
		g.renderer.ShowGrid = !g.renderer.ShowGrid
	case in.IsKeyJustPressed(ebiten.KeyP):
		g.renderer.ShowPaths = !g.renderer.ShowPaths
	case in.IsKeyJustPressed(ebiten.KeyS):
		g.saveRoster()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var drag *render.DragLine
	if id, x, y, ok := g.translator.DragPreview(); ok {
		drag = &render.DragLine{AgentID: id, X: x, Y: y}
	}
	g.renderer.Draw(screen, g.engine.Snapshot(), g.defenders, drag)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = float64(outsideWidth), float64(outsideHeight)
	g.mixer.SetListener(g.width/2, g.height/2)
	return outsideWidth, outsideHeight
}

func (g *Game) saveRoster() {
	if err := g.store.Save(g.defenders); err != nil {
		g.log.WithError(err).Warn("could not save roster")
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	seed := flag.Int64("seed", 0, "random seed for obstacles and spawns (0 = clock)")
	count := flag.Int("defenders", 3, "starter roster size when nothing is saved")
	debug := flag.Bool("debug", false, "start with debug time scaling on")
	flag.Parse()

	logger.Init()
	log := logger.Log

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}

	var opts []game.Option
	if *seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(*seed))))
	}
	eng, err := game.New(cfg, opts...)
	if err != nil {
		log.WithError(err).Fatal("failed to create engine")
	}
	eng.SetDebug(*debug)

	gdataManager, err := gdata.Open(gdata.Config{AppName: "valentine_defense"})
	if err != nil {
		log.WithError(err).Warn("persistent storage unavailable, roster will not be saved")
		gdataManager = nil
	}
	store := roster.NewStore(gdataManager)
	defenders, err := store.Load(ScreenWidth, ScreenHeight)
	if err != nil {
		log.WithError(err).Warn("failed to load roster, using starter roster")
	}
	if len(defenders) == 0 {
		defenders = roster.Starter(*count, ScreenWidth, ScreenHeight)
	}

	audioContext := ebaudio.NewContext(audio.SampleRate)
	mixer := audio.NewMixer(audio.NewEbitenOutput(audioContext))

	g := NewGame(eng, defenders, mixer, store)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Valentine Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
	g.saveRoster()
}
