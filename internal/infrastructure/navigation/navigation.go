// Package navigation implements the Navigator port. The session manager only
// declares navigation intent; in the web front-end the browser performs the
// actual move by following redirects, so the production navigator records and
// logs the intent for handlers that want to consult it.
package navigation

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.Navigator = (*Recorder)(nil)

// Recorder remembers the most recent navigation target.
type Recorder struct {
	log zerolog.Logger

	mu   sync.Mutex
	last string
}

func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	r.last = path
	r.mu.Unlock()
	r.log.Debug().Str("path", path).Msg("navigation requested")
}

// Last returns the most recent target, or "" when nothing was requested yet.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
