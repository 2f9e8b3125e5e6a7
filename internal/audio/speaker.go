package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/drop/internal/config"
)

const (
	speakerLatency = 100 * time.Millisecond
	rainLoopLength = 4 * time.Second
)

// Speaker plays audio through the system device via beep's speaker.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	catch       *beep.Buffer
	music       beep.Streamer
	musicCtrl   *beep.Ctrl
	musicFile   beep.StreamSeekCloser
	catchVolume float64
	musicVolume float64
	logger      *log.Logger
	initialized bool
}

// NewSpeaker loads the configured sounds and opens the audio device.
// Unreadable assets are an error. A device that fails to open is logged and
// the returned Speaker stays silent.
func NewSpeaker(cfg config.AudioConfig, assets config.AssetsConfig, logger *log.Logger) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	catch, err := LoadCatch(assets.CatchSound, rate)
	if err != nil {
		return nil, err
	}
	music, file, err := OpenMusic(assets.Music, rate)
	if err != nil {
		return nil, err
	}

	s := &Speaker{
		rate:        rate,
		mixer:       &beep.Mixer{},
		catch:       catch,
		music:       music,
		musicFile:   file,
		catchVolume: cfg.CatchVolume,
		musicVolume: cfg.MusicVolume,
		logger:      logger,
	}

	if err := speaker.Init(rate, rate.N(speakerLatency)); err != nil {
		logger.Warn("audio device unavailable, continuing without sound", "err", err)
		return s, nil
	}
	speaker.Play(s.mixer)
	s.initialized = true
	logger.Debug("audio device ready", "rate", int(rate))
	return s, nil
}

// PlayCatch queues one copy of the catch sound on the mixer.
func (s *Speaker) PlayCatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	one := s.catch.Streamer(0, s.catch.Len())
	speaker.Lock()
	s.mixer.Add(withVolume(one, s.catchVolume))
	speaker.Unlock()
}

// StartMusic starts the music loop. Calling it again while the loop plays is a no-op.
func (s *Speaker) StartMusic() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.musicCtrl != nil {
		return nil
	}
	s.musicCtrl = &beep.Ctrl{Streamer: withVolume(s.music, s.musicVolume)}
	speaker.Lock()
	s.mixer.Add(s.musicCtrl)
	speaker.Unlock()
	return nil
}

// Close stops playback, closes the music file and the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Clear()
		speaker.Close()
		s.initialized = false
	}
	if s.musicFile != nil {
		err := s.musicFile.Close()
		s.musicFile = nil
		if err != nil {
			return fmt.Errorf("close music: %w", err)
		}
	}
	return nil
}

var _ Sink = (*Speaker)(nil)

// LoadCatch reads the catch sound fully into memory at the given rate.
// An empty path yields the synthesized cue.
func LoadCatch(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if path == "" {
		buf.Append(samplesStreamer(Catch(int(rate))))
		return buf, nil
	}

	stream, format, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catch sound: %w", err)
	}
	defer stream.Close()

	buf.Append(resampled(stream, format.SampleRate, rate))
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("load catch sound %s: %w", path, err)
	}
	return buf, nil
}

// OpenMusic prepares an endless music stream at the given rate.
// File-backed music is streamed from disk; the returned closer owns the file.
// An empty path yields the synthesized rain loop and a nil closer.
func OpenMusic(path string, rate beep.SampleRate) (beep.Streamer, beep.StreamSeekCloser, error) {
	if path == "" {
		buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
		buf.Append(samplesStreamer(Rain(int(rate), rainLoopLength, 1)))
		return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil, nil
	}

	stream, format, err := decodeFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load music: %w", err)
	}
	return resampled(beep.Loop(-1, stream), format.SampleRate, rate), stream, nil
}

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%s: unsupported audio format %q", path, ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, format, nil
}

func resampled(s beep.Streamer, from, to beep.SampleRate) beep.Streamer {
	if from == to {
		return s
	}
	return beep.Resample(4, from, to, s)
}

// Volume is in beep's base-2 scale: 0 leaves the signal unchanged, -1 halves it.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

func samplesStreamer(samples [][2]float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy(out, samples[pos:])
		pos += n
		return n, true
	})
}
