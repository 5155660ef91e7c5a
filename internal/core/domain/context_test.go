package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestContext_ResolveDefault(t *testing.T) {
	ctx := domain.NewContext()
	if err := ctx.Declare(domain.HardwareArguments(nil, domain.HardwareOptions{Arm: true})...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err := ctx.Resolve("arm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "no-arm" {
		t.Errorf("expected default no-arm, got %q", value)
	}
}

func TestContext_SetOverridesDefault(t *testing.T) {
	ctx := domain.NewContext()
	if err := ctx.Declare(domain.HardwareArguments(nil, domain.HardwareOptions{Arm: true})...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ctx.Set("arm", "right-arm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err := ctx.Resolve("arm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "right-arm" {
		t.Errorf("expected right-arm, got %q", value)
	}
}

func TestContext_ResolveUndeclared(t *testing.T) {
	ctx := domain.NewContext()

	_, err := ctx.Resolve("laser_model")
	if err == nil {
		t.Fatal("expected error for undeclared argument, got nil")
	}
	if !errors.Is(err, domain.ErrUndeclaredArgument) {
		t.Errorf("expected ErrUndeclaredArgument, got %v", err)
	}

	// Verify metadata names the argument
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["argument"].(string); !ok || name != "laser_model" {
		t.Errorf("expected metadata argument=laser_model, got %v", zErr.Metadata()["argument"])
	}
}

func TestContext_SetUndeclared(t *testing.T) {
	ctx := domain.NewContext()

	err := ctx.Set("arm", "right-arm")
	if !errors.Is(err, domain.ErrUndeclaredArgument) {
		t.Errorf("expected ErrUndeclaredArgument, got %v", err)
	}
}

func TestContext_SetInvalidChoice(t *testing.T) {
	ctx := domain.NewContext()
	if err := ctx.Declare(domain.HardwareArguments(nil, domain.HardwareOptions{Arm: true})...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ctx.Set("arm", "three-arms")
	if !errors.Is(err, domain.ErrInvalidChoice) {
		t.Errorf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestContext_DeclareDuplicate(t *testing.T) {
	ctx := domain.NewContext()
	arg := domain.Argument{Name: "arm", Default: "no-arm"}

	if err := ctx.Declare(arg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ctx.Declare(arg)
	if !errors.Is(err, domain.ErrDuplicateArgument) {
		t.Errorf("expected ErrDuplicateArgument, got %v", err)
	}
}

func TestContext_ArgumentsKeepDeclarationOrder(t *testing.T) {
	ctx := domain.NewContext()
	declared := domain.HardwareArguments(domain.BaseArguments, domain.AllHardware())
	if err := ctx.Declare(declared...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed := ctx.Arguments()
	if len(listed) != len(declared) {
		t.Fatalf("expected %d arguments, got %d", len(declared), len(listed))
	}
	for i := range declared {
		if listed[i].Name != declared[i].Name {
			t.Errorf("position %d: expected %s, got %s", i, declared[i].Name, listed[i].Name)
		}
	}
}
