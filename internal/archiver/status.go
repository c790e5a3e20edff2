package archiver

import (
	"sync"
	"time"
)

// State is the current step of a stream's loop.
type State string

const (
	StateIdle      State = "idle"      // not running
	StateResuming  State = "resuming"  // reading progress from storage
	StatePolling   State = "polling"   // deciding whether the next height is archivable
	StateArchiving State = "archiving" // running the pipeline for the next height
	StateWaiting   State = "waiting"   // sleeping for one block time
	StateComplete  State = "complete"  // backfill reached the live-sync start height
	StateHalted    State = "halted"    // stopped by a permanent error
)

// StreamStatus is a point-in-time view of a stream.
type StreamStatus struct {
	Stream       StreamKind `json:"stream"`
	State        State      `json:"state"`
	NextHeight   uint64     `json:"next_height"`
	Head         uint64     `json:"head,omitempty"`
	LastArchived *uint64    `json:"last_archived"`
	LastTxID     string     `json:"last_tx_id,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Halted reports whether the stream stopped because of a permanent error.
func (s StreamStatus) Halted() bool {
	return s.State == StateHalted
}

// statusBoard keeps the latest StreamStatus of every stream.
type statusBoard struct {
	mu      sync.RWMutex
	streams map[StreamKind]StreamStatus
}

func newStatusBoard() *statusBoard {
	b := &statusBoard{streams: make(map[StreamKind]StreamStatus, len(Streams))}
	for _, kind := range Streams {
		b.streams[kind] = StreamStatus{Stream: kind, State: StateIdle}
	}

	return b
}

func (b *statusBoard) get(kind StreamKind) StreamStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.streams[kind]
}

func (b *statusBoard) update(kind StreamKind, fn func(*StreamStatus)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	status := b.streams[kind]
	fn(&status)
	status.UpdatedAt = time.Now().UTC()
	b.streams[kind] = status
}

func (b *statusBoard) setState(kind StreamKind, state State) {
	b.update(kind, func(s *StreamStatus) { s.State = state })
}

func (b *statusBoard) archived(kind StreamKind, height uint64, txid string) {
	b.update(kind, func(s *StreamStatus) {
		s.LastArchived = &height
		s.LastTxID = txid
		s.NextHeight = height + 1
		s.LastError = ""
	})
}

func (b *statusBoard) failed(kind StreamKind, err error) {
	b.update(kind, func(s *StreamStatus) { s.LastError = err.Error() })
}

func (b *statusBoard) halted(kind StreamKind, err error) {
	b.update(kind, func(s *StreamStatus) {
		s.State = StateHalted
		s.LastError = err.Error()
	})
}
