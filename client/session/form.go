// Package session drives the edit and auth workflows of the admin
// screens.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/islemdzxd/delivery-management-platform/client/api"
)

type State string

const (
	StateEmpty      State = "empty"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// FormSession runs one create-or-update workflow over a draft of T.
// T is a value type, so the draft is already a shallow copy of the
// record it was seeded from and edits never leak back into a store.
type FormSession[T any] struct {
	mu          sync.Mutex
	state       State
	mode        Mode
	id          uint
	draft       T
	fieldErrors map[string]string
	message     string

	validate  func(T) map[string]string
	create    func(context.Context, T) error
	update    func(context.Context, uint, T) error
	onSuccess func(context.Context)
}

// Config wires the session to a resource. Validate may be nil when the
// form has no required fields. OnSuccess typically refreshes the store.
type Config[T any] struct {
	Validate  func(T) map[string]string
	Create    func(context.Context, T) error
	Update    func(context.Context, uint, T) error
	OnSuccess func(context.Context)
}

func NewFormSession[T any](cfg Config[T]) *FormSession[T] {
	return &FormSession[T]{
		state:     StateEmpty,
		validate:  cfg.Validate,
		create:    cfg.Create,
		update:    cfg.Update,
		onSuccess: cfg.OnSuccess,
	}
}

// BeginCreate opens the form with a blank (or prefilled) draft.
func (s *FormSession[T]) BeginCreate(initial T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
	s.mode = ModeCreate
	s.id = 0
	s.draft = initial
	s.fieldErrors = nil
	s.message = ""
}

// BeginUpdate opens the form seeded from an existing record.
func (s *FormSession[T]) BeginUpdate(id uint, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
	s.mode = ModeUpdate
	s.id = id
	s.draft = record
	s.fieldErrors = nil
	s.message = ""
}

// SetDraft replaces the draft with the screen's current field values.
func (s *FormSession[T]) SetDraft(draft T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing && s.state != StateFailure {
		return
	}
	s.draft = draft
	s.state = StateEditing
}

func (s *FormSession[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *FormSession[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *FormSession[T]) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// FieldErrors returns the per-field messages of the last failure.
func (s *FormSession[T]) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		out[k] = v
	}
	return out
}

func (s *FormSession[T]) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Cancel discards the draft. Nothing the user typed reaches the store.
func (s *FormSession[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.state = StateEmpty
	s.draft = zero
	s.fieldErrors = nil
	s.message = ""
}

// Submit validates the draft and dispatches it. On failure the draft
// and field errors stay in place so the user can correct and resubmit.
func (s *FormSession[T]) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateEditing && s.state != StateFailure {
		s.mu.Unlock()
		return errors.New("no draft to submit")
	}
	draft := s.draft
	mode := s.mode
	id := s.id

	if s.validate != nil {
		if errs := s.validate(draft); len(errs) > 0 {
			s.state = StateFailure
			s.fieldErrors = errs
			s.message = "Veuillez corriger les champs en erreur."
			s.mu.Unlock()
			return &api.ValidationError{Fields: errs}
		}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	var err error
	if mode == ModeUpdate {
		err = s.update(ctx, id, draft)
	} else {
		err = s.create(ctx, draft)
	}

	s.mu.Lock()
	if err != nil {
		s.state = StateFailure
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			s.fieldErrors = vErr.Fields
			s.message = "Veuillez corriger les champs en erreur."
		} else {
			s.fieldErrors = nil
			s.message = "L'enregistrement a échoué. Réessayez."
		}
		s.mu.Unlock()
		return err
	}

	var zero T
	s.state = StateSuccess
	s.draft = zero
	s.fieldErrors = nil
	s.message = ""
	onSuccess := s.onSuccess
	s.mu.Unlock()

	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}

// DeleteAction performs confirmed deletes outside any form lifecycle.
type DeleteAction struct {
	Delete    func(context.Context, uint) error
	OnSuccess func(context.Context)
}

var ErrNotConfirmed = errors.New("delete not confirmed")

// Run refuses without explicit confirmation. Conflicts pass through
// typed so screens can explain why the record cannot go away.
func (a DeleteAction) Run(ctx context.Context, id uint, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := a.Delete(ctx, id); err != nil {
		return err
	}
	if a.OnSuccess != nil {
		a.OnSuccess(ctx)
	}
	return nil
}
