package domain_test

import (
	"testing"

	"go.trai.ch/tiago/internal/core/domain"
)

func TestConcat_EvaluatesLeftToRight(t *testing.T) {
	ctx := domain.NewContext()
	if err := ctx.Declare(domain.Argument{Name: "arm", Default: "no-arm"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub := domain.Concat{domain.Text("arm="), domain.Configuration("arm")}

	text, err := sub.Perform(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "arm=no-arm" {
		t.Errorf("unexpected result: %q", text)
	}
}

func TestConcat_ReevaluationTracksContext(t *testing.T) {
	ctx := domain.NewContext()
	if err := ctx.Declare(domain.Argument{Name: "arm", Default: "no-arm"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub := domain.Configuration("arm")

	first, err := sub.Perform(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ctx.Set("arm", "left-arm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := sub.Perform(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != "no-arm" || second != "left-arm" {
		t.Errorf("expected no-arm then left-arm, got %q then %q", first, second)
	}
}

func TestConcat_StopsAtFirstError(t *testing.T) {
	sub := domain.Concat{domain.Text("x"), domain.Configuration("missing")}

	if _, err := sub.Perform(domain.NewContext()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSubstitution_Describe(t *testing.T) {
	sub := domain.Concat{domain.Text("'"), domain.Configuration("arm")}

	desc := sub.Describe()
	want := `concat("'", config(arm))`
	if desc != want {
		t.Errorf("expected %q, got %q", want, desc)
	}
}
