package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testProfile(name string) *Profile {
	return &Profile{
		ID:              uuid.New().String(),
		Name:            name,
		Sensitivity:     1.5,
		SingleThreshold: 0.05,
		DoubleThreshold: 0.06,
		SmoothingWindow: 7,
	}
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := testProfile("precise")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Name != "precise" {
		t.Errorf("Name = %q, want %q", got.Name, "precise")
	}
	if got.Sensitivity != 1.5 {
		t.Errorf("Sensitivity = %v, want 1.5", got.Sensitivity)
	}
	if got.SmoothingWindow != 7 {
		t.Errorf("SmoothingWindow = %d, want 7", got.SmoothingWindow)
	}
}

func TestProfileRepository_GetByName(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := testProfile("relaxed")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByName("relaxed")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("ID = %q, want %q", got.ID, p.ID)
	}
}

func TestProfileRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	repo.Create(testProfile("one"))
	repo.Create(testProfile("two"))

	profiles, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("List() returned %d profiles, want 2", len(profiles))
	}
}

func TestProfileRepository_Update(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := testProfile("tweakable")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	p.Sensitivity = 2.5
	if err := repo.Update(p); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Sensitivity != 2.5 {
		t.Errorf("Sensitivity = %v, want 2.5", got.Sensitivity)
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := testProfile("doomed")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestProfileRepository_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	if err := repo.Update(testProfile("ghost")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
