//go:build linux

// Package mpris exposes the reader over the MPRIS D-Bus interface so
// desktop media keys control reading.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/speech"
)

// Adapter connects the reader service to MPRIS over D-Bus.
type Adapter struct {
	service reader.Service
	server  *server.Server
	done    chan struct{}
}

// New creates and starts a new MPRIS adapter.
func New(service reader.Service) (*Adapter, error) {
	a := &Adapter{
		service: service,
		done:    make(chan struct{}),
	}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{service: service}

	a.server = server.NewServer("lectern", rootAdapter, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Lectern", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"application/pdf"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
// Pages stand in for tracks: Next and Previous move between pages.
type playerAdapter struct {
	service reader.Service
}

func (p *playerAdapter) Next() error {
	return p.service.NextPage()
}

func (p *playerAdapter) Previous() error {
	return p.service.PreviousPage()
}

func (p *playerAdapter) Pause() error {
	return p.service.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.service.Toggle()
}

func (p *playerAdapter) Stop() error {
	return p.service.Stop()
}

func (p *playerAdapter) Play() error {
	return p.service.Play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Utterance playback is not seekable
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.State() {
	case reader.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case reader.StatePaused:
		return types.PlaybackStatusPaused, nil
	case reader.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

// Rate maps the speaking rate onto the MPRIS scale, with the default
// rate as 1.0.
func (p *playerAdapter) Rate() (float64, error) {
	return float64(p.service.Rate()) / speech.DefaultRate, nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	return p.service.SetRate(int(rate * speech.DefaultRate))
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return float64(reader.MinRate) / speech.DefaultRate, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return float64(reader.MaxRate) / speech.DefaultRate, nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	doc := p.service.Document()
	if doc == nil {
		return types.Metadata{}, nil
	}

	page := p.service.PageIndex() + 1
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatPageID(doc.Path(), page)),
		Length:  types.Microseconds(p.service.Duration().Microseconds()),
		Title:   fmt.Sprintf("%s — page %d/%d", doc.Name(), page, doc.PageCount()),
		Url:     "file://" + doc.Path(),
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.service.Volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	return p.service.SetVolume(level)
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.service.PageIndex() < p.service.PageCount()-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.service.PageIndex() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.Document() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatPageID(path string, page int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s#%d", path, page)
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Page/%x", h.Sum64())
}
