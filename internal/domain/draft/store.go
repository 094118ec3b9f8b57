package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/storage"
)

// Storage keys inside a session namespace.
const (
	KeyData     = "kizuna_data"
	KeyPlan     = "kizuna_plan"
	KeyLanguage = "kizuna_lang"
)

// Listener is called with the persisted draft after every update.
type Listener func(CoupleDraft)

type session struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int

	// refs counts in-flight operations and live subscriptions. Guarded by
	// Manager.mu.
	refs int
}

// Manager hands out per-session draft stores over one storage backend.
// Writes to the same session are serialized; different sessions never
// contend. A session entry only lives while an operation or subscription
// holds it.
type Manager struct {
	backend storage.Store

	mu       sync.Mutex
	sessions map[string]*session
}

func NewManager(backend storage.Store) *Manager {
	return &Manager{
		backend:  backend,
		sessions: make(map[string]*session),
	}
}

func (m *Manager) acquire(ns string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[ns]
	if !ok {
		s = &session{listeners: make(map[int]Listener)}
		m.sessions[ns] = s
	}
	s.refs++
	return s
}

func (m *Manager) release(ns string, s *session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.refs--
	if s.refs <= 0 && m.sessions[ns] == s {
		delete(m.sessions, ns)
	}
}

// For returns the draft store of one session namespace.
func (m *Manager) For(ns string) *Store {
	return &Store{backend: m.backend, ns: ns, m: m}
}

// Touch marks a session as active without changing it, so idle eviction
// only removes sessions nobody has visited. Backends without a notion of
// idleness ignore it.
func (m *Manager) Touch(ctx context.Context, ns string) error {
	t, ok := m.backend.(storage.Toucher)
	if !ok {
		return nil
	}
	if err := t.Touch(ctx, ns); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

// Store is the draft of one session: the single source of truth every
// wizard step reads from.
type Store struct {
	backend storage.Store
	ns      string
	m       *Manager
}

func (s *Store) Namespace() string { return s.ns }

// Load returns the persisted draft, or the default draft when nothing was
// stored or the record cannot be decoded. Only backend failures are
// returned as errors.
func (s *Store) Load(ctx context.Context) (CoupleDraft, error) {
	raw, err := s.backend.Get(ctx, s.ns, KeyData)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return Default(), nil
	case errors.Is(err, storage.ErrCorrupt):
		log.Printf("draft_load_reset ns=%s reason=%v", s.ns, err)
		return Default(), nil
	case err != nil:
		return CoupleDraft{}, fmt.Errorf("load draft: %w", err)
	}

	d := Default()
	if err := json.Unmarshal(raw, &d); err != nil {
		log.Printf("draft_load_reset ns=%s reason=%v", s.ns, err)
		return Default(), nil
	}
	d.normalize()
	return d, nil
}

// Update merges p onto the current draft and persists the full result.
func (s *Store) Update(ctx context.Context, p Patch) (CoupleDraft, error) {
	return s.Mutate(ctx, func(CoupleDraft) (Patch, error) { return p, nil })
}

// Mutate computes a patch from the current draft and applies it while
// holding the session lock, so read-modify-write sequences from
// concurrent requests never interleave. If fn returns an error nothing is
// written.
func (s *Store) Mutate(ctx context.Context, fn func(CoupleDraft) (Patch, error)) (CoupleDraft, error) {
	merged, err := s.mutateLocked(ctx, fn)
	if err != nil {
		return CoupleDraft{}, err
	}
	s.notify(merged)
	return merged, nil
}

func (s *Store) mutateLocked(ctx context.Context, fn func(CoupleDraft) (Patch, error)) (CoupleDraft, error) {
	sess := s.m.acquire(s.ns)
	defer s.m.release(s.ns, sess)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	current, err := s.Load(ctx)
	if err != nil {
		return CoupleDraft{}, err
	}
	p, err := fn(current.Clone())
	if err != nil {
		return CoupleDraft{}, err
	}
	merged := p.Apply(current)
	if err := s.persist(ctx, merged); err != nil {
		return CoupleDraft{}, err
	}
	return merged, nil
}

func (s *Store) persist(ctx context.Context, d CoupleDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.backend.Set(ctx, s.ns, KeyData, raw); err != nil {
		return fmt.Errorf("persist draft: %w", err)
	}
	// The plan is kept under its own key as well so it survives the draft
	// being cleared on its own.
	if d.Plan != "" {
		if err := s.backend.Set(ctx, s.ns, KeyPlan, []byte(d.Plan)); err != nil {
			return fmt.Errorf("persist plan: %w", err)
		}
	}
	return nil
}

// SelectPlan is the landing-step plan choice.
func (s *Store) SelectPlan(ctx context.Context, p plan.PlanType) (CoupleDraft, error) {
	if !p.Valid() {
		return CoupleDraft{}, ErrInvalidPlan
	}
	return s.Update(ctx, Patch{Plan: &p})
}

// SelectedPlan returns the last selected plan, if any was ever chosen.
func (s *Store) SelectedPlan(ctx context.Context) (plan.PlanType, bool, error) {
	raw, err := s.backend.Get(ctx, s.ns, KeyPlan)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrCorrupt) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load plan: %w", err)
	}
	p, ok := plan.ParsePlanType(string(raw))
	return p, ok, nil
}

// Language returns the stored display language, or the default one.
func (s *Store) Language(ctx context.Context) (i18n.Language, error) {
	raw, err := s.backend.Get(ctx, s.ns, KeyLanguage)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrCorrupt) {
		return i18n.Default, nil
	}
	if err != nil {
		return "", fmt.Errorf("load language: %w", err)
	}
	return i18n.ParseOr(string(raw), i18n.Default), nil
}

// SetLanguage persists the language preference. The draft is not touched.
func (s *Store) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if !lang.Valid() {
		return ErrInvalidLanguage
	}
	if err := s.backend.Set(ctx, s.ns, KeyLanguage, []byte(lang)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}

// Reset removes the draft, plan and language of the session. The next
// Load returns the default draft.
func (s *Store) Reset(ctx context.Context) error {
	sess := s.m.acquire(s.ns)
	sess.mu.Lock()
	err := s.backend.Delete(ctx, s.ns, KeyData, KeyPlan, KeyLanguage)
	sess.mu.Unlock()
	s.m.release(s.ns, sess)
	if err != nil {
		return fmt.Errorf("reset draft: %w", err)
	}
	s.notify(Default())
	return nil
}

// Subscribe registers fn for every future update of this session. The
// returned function removes it.
func (s *Store) Subscribe(fn Listener) func() {
	sess := s.m.acquire(s.ns)
	sess.mu.Lock()
	id := sess.nextID
	sess.nextID++
	sess.listeners[id] = fn
	sess.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sess.mu.Lock()
			delete(sess.listeners, id)
			sess.mu.Unlock()
			s.m.release(s.ns, sess)
		})
	}
}

func (s *Store) notify(d CoupleDraft) {
	sess := s.m.acquire(s.ns)
	sess.mu.Lock()
	listeners := make([]Listener, 0, len(sess.listeners))
	for _, fn := range sess.listeners {
		listeners = append(listeners, fn)
	}
	sess.mu.Unlock()
	s.m.release(s.ns, sess)

	for _, fn := range listeners {
		fn(d.Clone())
	}
}
