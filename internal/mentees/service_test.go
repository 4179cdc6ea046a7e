package mentees

import (
	"context"
	"errors"
	"testing"
)

func TestServiceUpsertIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "ada@example.com", "Ada", "Backend Engineer")
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	second, err := svc.Upsert(ctx, "ada@example.com", "Ada", "Backend Engineer")
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if first != second {
		t.Fatalf("ids differ: %d vs %d", first, second)
	}
}

func TestServiceUpsertBlankFieldsPreserved(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	id, err := svc.Upsert(ctx, "ada@example.com", "Ada", "Backend Engineer")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, "ada@example.com", "", ""); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	m, err := svc.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if m.ID != id || m.Name != "Ada" || m.TargetRole != "Backend Engineer" {
		t.Fatalf("mentee = %+v", m)
	}
}

func TestServiceUpsertUpdatesNonBlankFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "ada@example.com", "Ada", "Backend Engineer"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, "ada@example.com", "Ada L.", "Staff Engineer"); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	m, err := svc.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if m.Name != "Ada L." || m.TargetRole != "Staff Engineer" {
		t.Fatalf("mentee = %+v", m)
	}
}

func TestServiceUpsertRequiresEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Upsert(context.Background(), "   ", "Ada", ""); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestServiceFindByEmailNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
