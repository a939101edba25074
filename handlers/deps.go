package handlers

import (
	"image"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/imaging"
	"github.com/LianHaeming/raw2hdr-site/storage"
	"github.com/LianHaeming/raw2hdr-site/tmpl"
)

// Deps holds all handler dependencies.
type Deps struct {
	Sessions  *storage.SessionStore
	Assets    *storage.AssetStore
	Templates *tmpl.Templates
	Log       *zap.Logger

	StaticDir      string
	RequestTimeout time.Duration
	// FrameInterval is the tick period of the frame stream.
	FrameInterval time.Duration
	// Noise returns the jitter source for one request's sample series. Nil
	// means a fresh randomly seeded source per request.
	Noise func() *rand.Rand

	heroOnce sync.Once
	hero     image.Image

	streamsOnce sync.Once
	streamsDone chan struct{}
	closeOnce   sync.Once
}

// streamsClosed is closed once CloseStreams has been called.
func (d *Deps) streamsClosed() <-chan struct{} {
	d.streamsOnce.Do(func() { d.streamsDone = make(chan struct{}) })
	return d.streamsDone
}

// CloseStreams ends every open frame stream.
// http.Server.Shutdown does not cancel request contexts, so serve registers
// this with RegisterOnShutdown.
func (d *Deps) CloseStreams() {
	done := d.streamsClosed()
	d.closeOnce.Do(func() { close(done) })
}

func (d *Deps) noise() *rand.Rand {
	if d.Noise != nil {
		return d.Noise()
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (d *Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

func (d *Deps) frameInterval() time.Duration {
	if d.FrameInterval <= 0 {
		return time.Second / 30
	}
	return d.FrameInterval
}

// heroSource returns the hero photo, loading it once. Without a photo on
// disk a synthetic landscape stands in.
func (d *Deps) heroSource() image.Image {
	d.heroOnce.Do(func() {
		if p, err := d.Assets.HeroPath(); err == nil {
			img, err := imaging.Load(p)
			if err == nil {
				d.hero = img
				return
			}
			d.logger().Warn("hero image unreadable, using generated image", zap.String("path", p), zap.Error(err))
		}
		d.hero = imaging.Synthesize(imaging.MaxWidth, imaging.MaxWidth*5/8)
	})
	return d.hero
}
