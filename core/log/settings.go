// File: settings.go
// Title: Shared Logging Settings
// Description: Implements the Settings type holding the process-wide
//              backend and formatting flags shared by all loggers. Settings
//              are passed by reference at logger construction so tests can
//              use independent instances; a process-wide default instance
//              backs the package-level Configure call.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation with console/journal selection
// - 2025-02-10 v0.1.0: Added thread/queue naming hooks

package log

import (
	"io"
	"os"
	"sync"
)

// Settings holds the backend selection and formatting flags shared by all
// loggers constructed with it. Safe for concurrent reads; mutation is
// expected once at startup before concurrent logging begins.
type Settings struct {
	mu sync.RWMutex

	useConsole         bool
	showTimestamps     bool
	absoluteTimestamps bool
	showStackTraces    bool

	subsystem string

	console *consoleSink
	journal Sink

	threadNamer func() string
	queueNamer  func() string
}

// NewSettings creates settings with the fixed defaults: console backend,
// no timestamps, no stack traces.
func NewSettings() *Settings {
	return &Settings{
		useConsole: true,
		console:    newConsoleSink(os.Stdout),
	}
}

// Configure selects the backend and formatting options. Selecting the
// journal backend without a subsystem set beforehand is a fatal
// misconfiguration and panics; the identifier is a one-time startup
// invariant, not a per-call condition.
func (s *Settings) Configure(useConsole, showTimestamps, showStackTraces bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !useConsole && s.subsystem == "" {
		panic("log: journal backend selected without a subsystem identifier")
	}

	s.useConsole = useConsole
	s.showTimestamps = showTimestamps
	s.showStackTraces = showStackTraces

	if !useConsole && s.journal == nil {
		s.journal = newJournalSink(s.subsystem, s.console)
	}
}

// SetSubsystem sets the journal subsystem identifier. Must be called
// before selecting the journal backend.
func (s *Settings) SetSubsystem(subsystem string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subsystem = subsystem
	s.journal = nil
}

// SetAbsoluteTimestamps switches timestamp rendering between wall-clock
// ("15:04:05.000") and relative ("12.345s") form.
func (s *Settings) SetAbsoluteTimestamps(absolute bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.absoluteTimestamps = absolute
}

// SetOutput redirects console output. Used by tests and by hosts that
// capture standard output themselves.
func (s *Settings) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.console = newConsoleSink(w)
	if js, ok := s.journal.(*journalSink); ok {
		js.fallback = s.console
	}
}

// SetThreadNamer installs a hook that names the calling worker for the
// location line. A nil hook leaves the thread name empty.
func (s *Settings) SetThreadNamer(namer func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threadNamer = namer
}

// SetQueueNamer installs a hook that names the calling queue for the
// location line. A nil hook leaves the queue name empty.
func (s *Settings) SetQueueNamer(namer func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queueNamer = namer
}

// snapshot captures a consistent view of the settings for one emit call.
type snapshot struct {
	useConsole         bool
	showTimestamps     bool
	absoluteTimestamps bool
	showStackTraces    bool

	sink Sink

	threadNamer func() string
	queueNamer  func() string
}

// snapshot returns the current flags and active sink under a read lock.
func (s *Settings) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		useConsole:         s.useConsole,
		showTimestamps:     s.showTimestamps,
		absoluteTimestamps: s.absoluteTimestamps,
		showStackTraces:    s.showStackTraces,
		threadNamer:        s.threadNamer,
		queueNamer:         s.queueNamer,
	}

	if s.useConsole || s.journal == nil {
		snap.sink = s.console
	} else {
		snap.sink = s.journal
	}

	return snap
}

// Default settings instance shared by loggers constructed with nil settings
var defaultSettings = NewSettings()

// Default returns the process-wide default settings instance
func Default() *Settings {
	return defaultSettings
}

// Configure configures the process-wide default settings
func Configure(useConsole, showTimestamps, showStackTraces bool) {
	defaultSettings.Configure(useConsole, showTimestamps, showStackTraces)
}
