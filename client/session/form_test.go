package session

import (
	"context"
	"errors"
	"testing"

	"github.com/islemdzxd/delivery-management-platform/client/api"
)

type clientForm struct {
	Nom       string
	Telephone string
}

func validateClientForm(f clientForm) map[string]string {
	errs := map[string]string{}
	if f.Nom == "" {
		errs["nom"] = "Ce champ est obligatoire."
	}
	return errs
}

func TestFormSessionCreateFlow(t *testing.T) {
	var submitted []clientForm
	refreshed := 0
	s := NewFormSession(Config[clientForm]{
		Validate: validateClientForm,
		Create: func(ctx context.Context, f clientForm) error {
			submitted = append(submitted, f)
			return nil
		},
		OnSuccess: func(ctx context.Context) { refreshed++ },
	})

	if s.State() != StateEmpty {
		t.Fatalf("initial state = %s", s.State())
	}

	s.BeginCreate(clientForm{})
	s.SetDraft(clientForm{Nom: "Transports Atlas"})
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if s.State() != StateSuccess {
		t.Errorf("state = %s, want success", s.State())
	}
	if len(submitted) != 1 || submitted[0].Nom != "Transports Atlas" {
		t.Errorf("submitted = %+v", submitted)
	}
	if refreshed != 1 {
		t.Errorf("refreshed = %d, want 1", refreshed)
	}
	if s.Draft().Nom != "" {
		t.Error("draft not cleared after success")
	}
}

func TestFormSessionCancelDiscardsDraft(t *testing.T) {
	created := 0
	s := NewFormSession(Config[clientForm]{
		Create: func(ctx context.Context, f clientForm) error {
			created++
			return nil
		},
	})

	record := clientForm{Nom: "Original"}
	s.BeginUpdate(4, record)
	s.SetDraft(clientForm{Nom: "Edited but abandoned"})
	s.Cancel()

	if s.State() != StateEmpty {
		t.Errorf("state = %s, want empty", s.State())
	}
	if created != 0 {
		t.Error("cancel dispatched a write")
	}
	// The record the draft was seeded from is untouched.
	if record.Nom != "Original" {
		t.Errorf("record = %+v", record)
	}
}

func TestFormSessionLocalValidationBlocksDispatch(t *testing.T) {
	created := 0
	s := NewFormSession(Config[clientForm]{
		Validate: validateClientForm,
		Create: func(ctx context.Context, f clientForm) error {
			created++
			return nil
		},
	})

	s.BeginCreate(clientForm{})
	err := s.Submit(context.Background())

	var vErr *api.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %T, want ValidationError", err)
	}
	if created != 0 {
		t.Error("invalid draft was dispatched")
	}
	if s.State() != StateFailure {
		t.Errorf("state = %s, want failure", s.State())
	}
	if s.FieldErrors()["nom"] == "" {
		t.Errorf("field errors = %v", s.FieldErrors())
	}
}

func TestFormSessionServerFailureRetainsDraft(t *testing.T) {
	s := NewFormSession(Config[clientForm]{
		Validate: validateClientForm,
		Create: func(ctx context.Context, f clientForm) error {
			return &api.ValidationError{Fields: map[string]string{"telephone": "Numéro de téléphone invalide."}}
		},
	})

	draft := clientForm{Nom: "Client", Telephone: "bad"}
	s.BeginCreate(draft)
	if err := s.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}

	if s.State() != StateFailure {
		t.Errorf("state = %s, want failure", s.State())
	}
	if s.Draft() != draft {
		t.Errorf("draft = %+v, want retained", s.Draft())
	}
	if s.FieldErrors()["telephone"] == "" {
		t.Errorf("field errors = %v", s.FieldErrors())
	}

	// The user can correct and resubmit from failure.
	s.SetDraft(clientForm{Nom: "Client", Telephone: "+213555123456"})
	if s.State() != StateEditing {
		t.Errorf("state after correction = %s, want editing", s.State())
	}
}

func TestFormSessionGenericFailureMessage(t *testing.T) {
	s := NewFormSession(Config[clientForm]{
		Create: func(ctx context.Context, f clientForm) error {
			return &api.ServerError{StatusCode: 500}
		},
	})

	s.BeginCreate(clientForm{Nom: "Client"})
	if err := s.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if len(s.FieldErrors()) != 0 {
		t.Errorf("field errors = %v, want none for a server error", s.FieldErrors())
	}
	if s.Message() == "" {
		t.Error("no generic failure message")
	}
}

func TestDeleteActionRequiresConfirmation(t *testing.T) {
	deleted := 0
	a := DeleteAction{
		Delete: func(ctx context.Context, id uint) error {
			deleted++
			return nil
		},
	}

	if err := a.Run(context.Background(), 1, false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
	if deleted != 0 {
		t.Error("delete dispatched without confirmation")
	}

	if err := a.Run(context.Background(), 1, true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d", deleted)
	}
}

func TestDeleteActionSurfacesConflict(t *testing.T) {
	refreshed := 0
	a := DeleteAction{
		Delete: func(ctx context.Context, id uint) error {
			return &api.ConflictError{Message: "Client référencé par des expéditions"}
		},
		OnSuccess: func(ctx context.Context) { refreshed++ },
	}

	err := a.Run(context.Background(), 1, true)
	var cErr *api.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %T, want ConflictError", err)
	}
	if refreshed != 0 {
		t.Error("refresh ran after a failed delete")
	}
}
