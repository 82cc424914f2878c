package demo

import (
	"fmt"
	"time"
)

// StatusTitle is the window title with a frame rate readout.
func StatusTitle(title string, fps int, frame time.Duration) string {
	return fmt.Sprintf("%s | %d FPS | %.2f ms", title, fps, float64(frame.Microseconds())/1000)
}
