package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"
	"go.senan.xyz/taglib"
)

// lengthReaders measure a track by decoding its headers and counting
// samples, for when TagLib reports nothing.
var lengthReaders = map[string]func(*os.File) (time.Duration, error){
	ExtMP3: mp3Length,
	ExtWAV: wavLength,
	ExtOGG: oggLength,
}

// ReadDuration returns the play length of a track. TagLib's audio
// properties are tried first.
func ReadDuration(path string) (time.Duration, error) {
	if props, err := taglib.ReadProperties(path); err == nil && props.Length > 0 {
		return props.Length, nil
	}

	measure, ok := lengthReaders[filepath.Ext(path)]
	if !ok {
		return 0, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return measure(f)
}

func mp3Length(f *os.File) (time.Duration, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, err
	}
	rate := d.SampleRate()
	if rate <= 0 {
		return 0, errors.New("mp3: invalid sample rate")
	}
	samples := max(d.SampleCount(), 0)
	return time.Duration(samples) * time.Second / time.Duration(rate), nil
}

func wavLength(f *os.File) (time.Duration, error) {
	s, format, err := wav.Decode(f)
	if err != nil {
		return 0, err
	}
	return format.SampleRate.D(s.Len()), nil
}

func oggLength(f *os.File) (time.Duration, error) {
	s, format, err := vorbis.Decode(f)
	if err != nil {
		return 0, err
	}
	return format.SampleRate.D(s.Len()), nil
}
