package parameter

import "time"

// Host loop timing
const (
	DefaultFPS = 30
	MinFPS     = 1
	MaxFPS     = 240

	// FeedStaleAfter marks a remote point as absent when no update arrives in time
	FeedStaleAfter = 250 * time.Millisecond
)

// FrameInterval converts a frame rate into a ticker period
func FrameInterval(fps int) time.Duration {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
