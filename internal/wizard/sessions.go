package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("wizard session not found")

// Session is one enrollment in progress.
type Session struct {
	ID             string                           `json:"id"`
	Step           Step                             `json:"step"`
	StepName       string                           `json:"stepName"`
	Identification *models.EnrollmentIdentification `json:"identification,omitempty"`
	Placement      *models.EnrollmentPlacement      `json:"placement,omitempty"`
	Summary        *models.EnrollmentSummary        `json:"summary,omitempty"`
	Student        *models.Student                  `json:"student,omitempty"`
	CreatedAt      time.Time                        `json:"createdAt"`
	UpdatedAt      time.Time                        `json:"updatedAt"`
}

// Sessions keeps wizard sessions in memory. Expired sessions are dropped on
// access.
type Sessions struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]Session
}

// NewSessions returns a registry whose sessions expire ttl after their last update.
func NewSessions(ttl time.Duration, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{ttl: ttl, now: now, sessions: make(map[string]Session)}
}

// Start opens a session at Identification.
func (r *Sessions) Start() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	now := r.now()
	s := Session{
		ID:        uuid.NewString(),
		Step:      StepIdentification,
		StepName:  StepIdentification.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions[s.ID] = s
	return s
}

// Get returns a live session.
func (r *Sessions) Get(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Update applies fn to a session atomically; the result is stored only
// when fn succeeds.
func (r *Sessions) Update(id string, fn func(Session) (Session, error)) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	next, err := fn(s)
	if err != nil {
		return s, err
	}
	next.ID = s.ID
	next.StepName = next.Step.String()
	next.UpdatedAt = r.now()
	r.sessions[id] = next
	return next, nil
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	return len(r.sessions)
}

func (r *Sessions) sweep() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
