package window

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/config"
)

// Audio is an audio.Sink backed by Ebitengine's audio context.
type Audio struct {
	ctx         *ebaudio.Context
	catch       []byte
	catchVolume float64
	music       *ebaudio.Player
	musicFile   io.Closer
}

// NewAudio creates the audio context and loads both sounds.
func NewAudio(cfg config.AudioConfig, assets config.AssetsConfig) (*Audio, error) {
	ctx := ebaudio.NewContext(cfg.SampleRate)

	catch, err := loadCatchPCM(ctx, assets.CatchSound)
	if err != nil {
		return nil, fmt.Errorf("load catch sound: %w", err)
	}

	loop, file, err := openMusicLoop(ctx, assets.Music)
	if err != nil {
		return nil, fmt.Errorf("load music: %w", err)
	}
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		closeQuietly(file)
		return nil, fmt.Errorf("create music player: %w", err)
	}
	music.SetVolume(linearVolume(cfg.MusicVolume))

	return &Audio{
		ctx:         ctx,
		catch:       catch,
		catchVolume: linearVolume(cfg.CatchVolume),
		music:       music,
		musicFile:   file,
	}, nil
}

// PlayCatch starts a fresh player for the catch sound.
func (a *Audio) PlayCatch() {
	p := a.ctx.NewPlayerFromBytes(a.catch)
	p.SetVolume(a.catchVolume)
	p.Play()
}

// StartMusic starts the music loop.
func (a *Audio) StartMusic() error {
	if !a.music.IsPlaying() {
		a.music.Play()
	}
	return nil
}

// Close stops the music and closes its file.
func (a *Audio) Close() error {
	err := a.music.Close()
	closeQuietly(a.musicFile)
	if err != nil {
		return fmt.Errorf("close music: %w", err)
	}
	return nil
}

var _ audio.Sink = (*Audio)(nil)

func loadCatchPCM(ctx *ebaudio.Context, path string) ([]byte, error) {
	if path == "" {
		return audio.PCM16(audio.Catch(ctx.SampleRate())), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := decode(ctx.SampleRate(), path, f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

func openMusicLoop(ctx *ebaudio.Context, path string) (*ebaudio.InfiniteLoop, io.Closer, error) {
	if path == "" {
		pcm := audio.PCM16(audio.Rain(ctx.SampleRate(), 4*time.Second, 1))
		return ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))), nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	stream, err := decode(ctx.SampleRate(), path, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return ebaudio.NewInfiniteLoop(stream, stream.Length()), f, nil
}

type pcmStream interface {
	io.ReadSeeker
	Length() int64
}

func decode(rate int, path string, f *os.File) (pcmStream, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.DecodeWithSampleRate(rate, f)
	case ".mp3":
		return mp3.DecodeWithSampleRate(rate, f)
	default:
		return nil, fmt.Errorf("%s: unsupported audio format %q", path, ext)
	}
}

// linearVolume converts a base-2 volume (0 = unchanged, -1 = half) into
// the linear [0, 1] factor Ebitengine players take.
func linearVolume(v float64) float64 {
	return math.Min(math.Pow(2, v), 1)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		//nolint:errcheck // Best-effort close on an error path
		c.Close()
	}
}
