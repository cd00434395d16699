package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
	"github.com/samber/lo"
)

// SetVolume sets the volume on the 0..MaxVolume scale.
// The level is kept across tracks.
func (p *Beep) SetVolume(level int) {
	p.level = lo.Clamp(level, 0, MaxVolume)

	if p.volume != nil {
		speaker.Lock()
		p.applyVolume()
		speaker.Unlock()
	}
}

// Volume returns the current volume on the 0..MaxVolume scale.
func (p *Beep) Volume() int {
	return p.level
}

// applyVolume pushes the level into the effect. Callers hold the speaker
// lock once the effect is playing.
func (p *Beep) applyVolume() {
	p.volume.Volume = levelToVolume(p.level)
	p.volume.Silent = p.level == 0
}

// levelToVolume converts a 0..MaxVolume level to beep's Volume value.
// beep uses a logarithmic scale with base 2:
// 0 means no change, -1 = half volume, -2 = quarter, etc.
// We map: 128 -> 0, 64 -> -1, 32 -> -2, 0 -> -10 (silent)
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= MaxVolume {
		return 0
	}
	return math.Log2(float64(level) / MaxVolume)
}
