// Package memstore implementa session.Provider en memoria (un solo proceso).
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/carwash-api/internal/application/session"
)

var _ session.Provider = (*Provider)(nil)

type entry struct {
	values    map[string]string
	expiresAt time.Time // cero = sin vencimiento
}

// Provider guarda todas las sesiones en un mapa protegido por RWMutex.
type Provider struct {
	mu        sync.RWMutex
	sessions  map[string]*entry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewProvider crea el almacén. ttl <= 0 desactiva el vencimiento.
func NewProvider(ttl time.Duration) *Provider {
	return &Provider{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open devuelve la vista de una sesión. No crea nada hasta el primer Set.
func (p *Provider) Open(sessionID string) session.Store {
	return &store{p: p, id: sessionID}
}

// Len devuelve el número de sesiones vivas.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	now := p.now()
	for _, e := range p.sessions {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

// Sweep borra las sesiones vencidas y devuelve cuántas eliminó.
func (p *Provider) Sweep() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sweepLocked(p.now())
}

func (p *Provider) sweepLocked(now time.Time) int {
	n := 0
	for id, e := range p.sessions {
		if e.expired(now) {
			delete(p.sessions, id)
			n++
		}
	}
	p.lastSweep = now
	return n
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type store struct {
	p  *Provider
	id string
}

func (s *store) Get(_ context.Context, key string) (string, error) {
	s.p.mu.RLock()
	defer s.p.mu.RUnlock()
	e, ok := s.p.sessions[s.id]
	if !ok || e.expired(s.p.now()) {
		return "", nil
	}
	return e.values[key], nil
}

func (s *store) Set(_ context.Context, key, value string) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	now := s.p.now()
	e, ok := s.p.sessions[s.id]
	if !ok || e.expired(now) {
		// A lo sumo un barrido por intervalo de TTL.
		if s.p.ttl > 0 && now.Sub(s.p.lastSweep) >= s.p.ttl {
			s.p.sweepLocked(now)
		}
		e = &entry{values: make(map[string]string, len(session.Keys))}
		s.p.sessions[s.id] = e
	}
	e.values[key] = value
	if s.p.ttl > 0 {
		e.expiresAt = now.Add(s.p.ttl)
	}
	return nil
}

// Clear borra la sesión completa bajo un único lock.
func (s *store) Clear(_ context.Context) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	delete(s.p.sessions, s.id)
	return nil
}
