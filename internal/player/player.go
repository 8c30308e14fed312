package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by Seek before the current load has completed.
var ErrNotLoaded = errors.New("no track loaded")

// speakerSampleRate is fixed; tracks at other rates are resampled.
const speakerSampleRate = beep.SampleRate(44100)

var (
	speakerMu    sync.Mutex
	speakerReady bool
)

func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerReady {
		return nil
	}
	if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerReady = true
	return nil
}

func speakerInitialized() bool {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	return speakerReady
}

// Player is the beep-backed audio engine.
//
// Every Load bumps a generation counter. Work started for an older
// generation (a download, a decode, an end-of-stream callback) is
// discarded when it completes, so the latest Load is authoritative.
type Player struct {
	mu    sync.Mutex
	log   *zap.Logger
	fetch *Fetcher

	gen      uint64
	cancel   context.CancelFunc
	ref      string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	attached bool // streamer is currently queued on the speaker
	finished bool
	err      error
}

// New creates a player. Remote references are resolved through fetch.
func New(fetch *Fetcher, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{fetch: fetch, log: log}
}

// Load starts loading ref in the background and supersedes any previous load.
// The track is left paused once decoded.
func (p *Player) Load(ref string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	gen := p.gen
	p.releaseLocked()
	p.ref = ref
	p.finished = false
	p.err = nil

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.load(ctx, gen, ref)
}

func (p *Player) load(ctx context.Context, gen uint64, ref string) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	path, err := p.fetch.Resolve(ctx, ref)
	if err == nil {
		streamer, format, err = decodeFile(path)
	}
	if err == nil {
		err = initSpeaker()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		if streamer != nil {
			streamer.Close()
		}
		return
	}
	if err != nil {
		if streamer != nil {
			streamer.Close()
		}
		p.err = fmt.Errorf("load %s: %w", ref, err)
		p.log.Warn("load failed", zap.String("ref", ref), zap.Error(err))
		return
	}

	p.streamer = streamer
	p.format = format

	var s beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		s = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.attachLocked()

	p.log.Debug("loaded",
		zap.String("ref", ref),
		zap.Duration("duration", format.SampleRate.D(streamer.Len())))
}

// attachLocked queues the current streamer on the speaker.
func (p *Player) attachLocked() {
	gen := p.gen
	p.attached = true
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// The callback runs on the speaker goroutine with its lock held.
		go p.markFinished(gen)
	})))
}

func (p *Player) markFinished(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.finished = true
	p.attached = false
}

// releaseLocked cancels any pending load and frees the current stream.
func (p *Player) releaseLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.attached && speakerInitialized() {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.attached = false
}

// Play starts or resumes playback. A finished track restarts from the top.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}

	if p.finished {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			p.log.Warn("rewind failed", zap.String("ref", p.ref), zap.Error(err))
			return
		}
		p.finished = false
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	if !p.attached {
		p.attachLocked()
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves to an absolute position, clamped to the track.
func (p *Player) Seek(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return ErrNotLoaded
	}

	n := p.format.SampleRate.N(pos)
	n = max(min(n, p.streamer.Len()-1), 0)

	// Mute around the seek to avoid a click from the stale buffer.
	vol := p.volume
	speaker.Lock()
	vol.Silent = true
	err := p.streamer.Seek(n)
	speaker.Unlock()
	time.AfterFunc(100*time.Millisecond, func() {
		speaker.Lock()
		vol.Silent = false
		speaker.Unlock()
	})
	if err != nil {
		return fmt.Errorf("seek %s: %w", p.ref, err)
	}

	if p.finished {
		p.finished = false
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
		p.attachLocked()
	}
	return nil
}

// Status returns a snapshot of the engine.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Status{Ref: p.ref, Err: p.err}
	if p.streamer == nil {
		return s
	}

	speaker.Lock()
	pos := p.streamer.Position()
	paused := p.ctrl.Paused
	speaker.Unlock()

	s.Loaded = true
	s.Duration = p.format.SampleRate.D(p.streamer.Len())
	s.Position = p.format.SampleRate.D(pos)
	s.JustFinished = p.finished
	s.Playing = !paused && !p.finished
	if p.finished {
		s.Position = s.Duration
	}
	return s
}

// Close stops playback and releases the stream.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.releaseLocked()
	p.ref = ""
	return nil
}
