package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/ui/styles"
)

// waveDelays staggers the bars of the playing indicator.
var waveDelays = []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 150 * time.Millisecond, 50 * time.Millisecond}

const wavePeriod = 600 * time.Millisecond // rise then fall

var waveLevels = []rune("▁▂▃▄▅▆▇")

// WaveFrame returns the plain indicator glyphs at elapsed.
func WaveFrame(elapsed time.Duration) string {
	var b strings.Builder
	for _, d := range waveDelays {
		phase := (elapsed - d) % wavePeriod
		if phase < 0 {
			phase += wavePeriod
		}
		// Triangle wave over one period.
		half := wavePeriod / 2
		level := phase
		if phase > half {
			level = wavePeriod - phase
		}
		idx := int(level) * (len(waveLevels) - 1) / int(half)
		b.WriteRune(waveLevels[idx])
	}
	return b.String()
}

// Wave renders the animated playing indicator shown next to the current
// track in the library.
func Wave(elapsed time.Duration) string {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Render(WaveFrame(elapsed))
}
