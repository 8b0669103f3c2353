// Command gesture-snake plays the snake game in a terminal, steered by the
// mouse or by a hand tracker streaming points over a websocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/lixenwraith/gesture-snake/audio"
	"github.com/lixenwraith/gesture-snake/config"
	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/feed"
	"github.com/lixenwraith/gesture-snake/input"
	"github.com/lixenwraith/gesture-snake/parameter"
	"github.com/lixenwraith/gesture-snake/render"
	"github.com/lixenwraith/gesture-snake/replay"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	fpsFlag    = flag.Int("fps", parameter.DefaultFPS, "Frames per second")
	inputFlag  = flag.String("input", config.SourceMouse, "Point source: mouse or feed")
	feedFlag   = flag.String("feed", config.DefaultFeedAddr, "Listen address for the hand tracker feed")
	recordFlag = flag.String("record", "", "Write a replay of the session to this path")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
	debugFlag  = flag.Bool("debug", false, "Verbose game tracing (glog -v=2)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if cfg.Debug {
		if err := flag.Set("v", "2"); err != nil {
			glog.Warningf("debug verbosity: %v", err)
		}
	}

	if err := run(cfg); err != nil {
		glog.Errorf("exit: %v", err)
		glog.Flush()
		fmt.Fprintf(os.Stderr, "gesture-snake: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with flags set on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "input":
			cfg.Input.Source = *inputFlag
		case "feed":
			cfg.Input.FeedAddr = *feedFlag
		case "record":
			cfg.Replay.Record = *recordFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

func run(cfg *config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := engine.NewSession(engine.Options{Seed: seed})
	glog.Infof("session %s seed %d input %s", session.ID(), session.Seed(), cfg.Input.Source)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	// Panic recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGESTURE-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			glog.Flush()
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	cols, rows := screen.Size()
	mouse := input.NewMouseSource(cols, rows)
	var source input.PointSource = mouse

	switch cfg.Input.Source {
	case config.SourceFeed:
		srv := feed.NewServer(cfg.Input.FeedAddr)
		if err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Close(ctx); err != nil {
				glog.Warningf("feed close: %v", err)
			}
		}()
		source = srv
	default:
		enableMouse(screen)
	}

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		glog.Warningf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	controls, err := cfg.Controls()
	if err != nil {
		return err
	}

	var recorder *replay.Recorder
	if cfg.Replay.Record != "" {
		recorder = replay.NewRecorder(session.ID(), session.Seed())
		defer func() {
			if err := recorder.SaveFile(cfg.Replay.Record); err != nil {
				glog.Errorf("save replay: %v", err)
				return
			}
			glog.Infof("replay of %d frames written to %s", recorder.Len(), cfg.Replay.Record)
		}()
	}

	h := &host{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(screen),
		controls: controls,
		mouse:    mouse,
		source:   source,
		sound:    sound,
		recorder: recorder,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = h.run(ctx, parameter.FrameInterval(cfg.FPS))
	if err == context.Canceled {
		err = nil
	}
	return err
}
