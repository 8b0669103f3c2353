// Command snake-replay plays a recorded session headlessly and prints its outcome.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/lixenwraith/gesture-snake/engine"
	"github.com/lixenwraith/gesture-snake/replay"
)

var verboseFlag = flag.Bool("events", false, "Print every tick that raised events")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] recording.snk\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	rec, err := replay.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-replay: %v\n", err)
		os.Exit(1)
	}

	summarize(os.Stdout, rec, *verboseFlag)
}

// summarize replays rec and writes the final state to w
func summarize(w io.Writer, rec *replay.Recording, events bool) engine.Snapshot {
	var eaten, levels int
	final := rec.Play(func(frame int, s engine.Snapshot) {
		if s.Events.Has(engine.EventFoodEaten) {
			eaten++
		}
		if s.Events.Has(engine.EventLevelUp) {
			levels++
		}
		if events && s.Events != 0 {
			fmt.Fprintf(w, "frame %6d tick %6d: %s\n", frame, s.Tick, s.Events)
		}
	})

	fmt.Fprintf(w, "session   %s\n", rec.SessionID)
	fmt.Fprintf(w, "seed      %d\n", rec.Seed)
	fmt.Fprintf(w, "frames    %d\n", len(rec.Frames))
	fmt.Fprintf(w, "phase     %s\n", final.Phase)
	fmt.Fprintf(w, "score     %d\n", final.Score)
	fmt.Fprintf(w, "level     %d\n", final.Level)
	fmt.Fprintf(w, "food      %d eaten, %d level-ups\n", eaten, levels)
	fmt.Fprintf(w, "trail     %d points, %.1f / %.1f\n", len(final.Trail), final.Length, final.AllowedLength)
	return final
}
