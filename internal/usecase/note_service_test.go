package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"notesd/internal/domain"
)

const (
	testOrgOne = "aaaaaaaaaaaaaaaaaaaaaaaa"
	testOrgTwo = "bbbbbbbbbbbbbbbbbbbbbbbb"
	testAdmin  = "111111111111111111111111"
	testReader = "222222222222222222222222"
)

func adminPrincipal() domain.Principal {
	return domain.Principal{TenantID: testOrgOne, UserID: testAdmin, Role: domain.RoleAdmin}
}

func foreignReader() domain.Principal {
	return domain.Principal{TenantID: testOrgTwo, UserID: testReader, Role: domain.RoleReader}
}

func TestNoteCreateStampsTenantAndAuthor(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo())
	note, err := svc.Create(context.Background(), adminPrincipal(), CreateNoteInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if note.OrganizationID != testOrgOne || note.CreatedBy != testAdmin {
		t.Fatalf("note = %+v", note)
	}
	if !domain.ValidID(note.ID) {
		t.Fatalf("note id %q not a valid identifier", note.ID)
	}
}

func TestNoteCreateValidation(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo())
	ctx := context.Background()
	principal := adminPrincipal()

	if _, err := svc.Create(ctx, principal, CreateNoteInput{Title: "", Content: "c"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("empty title: %v", err)
	}
	if _, err := svc.Create(ctx, principal, CreateNoteInput{Title: strings.Repeat("x", 201), Content: "c"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("long title: %v", err)
	}
	if _, err := svc.Create(ctx, principal, CreateNoteInput{Title: "t", Content: ""}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("empty content: %v", err)
	}
}

func TestNoteGetCrossTenantMasksAsNotFound(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo)
	ctx := context.Background()

	note, err := svc.Create(ctx, adminPrincipal(), CreateNoteInput{Title: "secret", Content: "c"})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	// The note exists; a foreign tenant must see the same error as for a
	// nonexistent one.
	_, errForeign := svc.Get(ctx, foreignReader(), note.ID)
	_, errMissing := svc.Get(ctx, adminPrincipal(), "ffffffffffffffffffffffff")
	if !errors.Is(errForeign, domain.ErrNotFound) {
		t.Fatalf("foreign get: %v", errForeign)
	}
	if !errors.Is(errMissing, domain.ErrNotFound) {
		t.Fatalf("missing get: %v", errMissing)
	}

	got, err := svc.Get(ctx, adminPrincipal(), note.ID)
	if err != nil {
		t.Fatalf("own get: %v", err)
	}
	if got.Title != "secret" {
		t.Fatalf("got = %+v", got)
	}
}

func TestNoteGetInvalidID(t *testing.T) {
	svc := NewNoteService(newMemNoteRepo())
	if _, err := svc.Get(context.Background(), adminPrincipal(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("invalid id: %v", err)
	}
}

func TestNoteUpdateAndDeleteScoped(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo)
	ctx := context.Background()

	note, err := svc.Create(ctx, adminPrincipal(), CreateNoteInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	title := "updated"
	if _, err := svc.Update(ctx, foreignReader(), note.ID, UpdateNoteInput{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign update: %v", err)
	}
	if err := svc.Delete(ctx, foreignReader(), note.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign delete: %v", err)
	}

	updated, err := svc.Update(ctx, adminPrincipal(), note.ID, UpdateNoteInput{Title: &title})
	if err != nil {
		t.Fatalf("own update: %v", err)
	}
	if updated.Title != "updated" || updated.Content != "c" {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Fatal("updated_at not set")
	}

	if err := svc.Delete(ctx, adminPrincipal(), note.ID); err != nil {
		t.Fatalf("own delete: %v", err)
	}
	if _, err := svc.Get(ctx, adminPrincipal(), note.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: %v", err)
	}
}

func TestNoteListTenantScopedAndOrdered(t *testing.T) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo)
	base := time.Now().UTC()
	times := []time.Time{base, base.Add(time.Second), base.Add(2 * time.Second)}
	i := 0
	svc.Clock = func() time.Time { t := times[i%len(times)]; i++; return t }

	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, adminPrincipal(), CreateNoteInput{Title: title, Content: "c"}); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}
	if _, err := svc.Create(ctx, foreignReader(), CreateNoteInput{Title: "other-org", Content: "c"}); err != nil {
		t.Fatalf("Create(other-org): %v", err)
	}

	notes, err := svc.List(ctx, adminPrincipal(), 0, 0)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("len(notes) = %d, want 3", len(notes))
	}
	if notes[0].Title != "third" || notes[2].Title != "first" {
		t.Fatalf("order = %s,%s,%s", notes[0].Title, notes[1].Title, notes[2].Title)
	}

	page, err := svc.List(ctx, adminPrincipal(), 1, 1)
	if err != nil {
		t.Fatalf("List(skip=1,limit=1): %v", err)
	}
	if len(page) != 1 || page[0].Title != "second" {
		t.Fatalf("page = %+v", page)
	}
}

func TestNoteRepoFailurePassesThrough(t *testing.T) {
	repo := newMemNoteRepo()
	repo.err = errBoom
	svc := NewNoteService(repo)
	if _, err := svc.Get(context.Background(), adminPrincipal(), testOrgOne); !errors.Is(err, errBoom) {
		t.Fatalf("expected repo error passed through, got %v", err)
	}
}
