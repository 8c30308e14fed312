// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player. Loads complete only when the test says
// so (CompleteLoad), which lets tests observe the Loading state.
type Mock struct {
	status     Status
	seekErr    error
	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	closed     bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load(ref string) {
	m.loadCalls = append(m.loadCalls, ref)
	m.status = Status{Ref: ref}
}

func (m *Mock) Play() {
	m.playCalls++
	if m.status.Loaded {
		m.status.Playing = true
		m.status.JustFinished = false
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.status.Playing = false
}

func (m *Mock) Seek(pos time.Duration) error {
	m.seekCalls = append(m.seekCalls, pos)
	if m.seekErr != nil {
		return m.seekErr
	}
	m.status.Position = pos
	m.status.JustFinished = false
	return nil
}

func (m *Mock) Status() Status { return m.status }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// CompleteLoad marks the current load as decoded, paused, with duration d.
func (m *Mock) CompleteLoad(d time.Duration) {
	m.status.Loaded = true
	m.status.Duration = d
}

// FailLoad reports a load error for the current reference.
func (m *Mock) FailLoad(err error) { m.status.Err = err }

// Finish simulates the end of the stream.
func (m *Mock) Finish() {
	m.status.Playing = false
	m.status.JustFinished = true
	m.status.Position = m.status.Duration
}

func (m *Mock) SetStatus(s Status) { m.status = s }

func (m *Mock) SetSeekError(err error) { m.seekErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.status.Position = d }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
