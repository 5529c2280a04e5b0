package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestE(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		if got := E("catalog.store.Delete", NotFound, nil); got != nil {
			t.Errorf("E() with nil error = %v, want nil", got)
		}
	})

	t.Run("carries op, kind and cause", func(t *testing.T) {
		root := errors.New("repository not found")
		err := E("catalog.store.Update", NotFound, root)

		var e *Error
		if !errors.As(err, &e) {
			t.Fatal("expected *errx.Error")
		}
		if e.Op != "catalog.store.Update" {
			t.Errorf("Op = %q, want %q", e.Op, "catalog.store.Update")
		}
		if e.Kind != NotFound {
			t.Errorf("Kind = %v, want %v", e.Kind, NotFound)
		}
		if !errors.Is(err, root) {
			t.Error("errors.Is() lost the cause")
		}
	})
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"op only", &Error{Op: "catalog.service.Like"}, "catalog.service.Like"},
		{"cause only", &Error{Err: errors.New("invalid identifier")}, "invalid identifier"},
		{"op and cause", &Error{Op: "catalog.service.Like", Err: errors.New("invalid identifier")}, "catalog.service.Like: invalid identifier"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOfAndOpOf(t *testing.T) {
	root := errors.New("repository not found")
	store := E("catalog.store.Delete", NotFound, root)
	svc := E("catalog.service.Delete", KindOf(store), store)
	wrapped := fmt.Errorf("handler: %w", svc)

	if got := KindOf(wrapped); got != NotFound {
		t.Errorf("KindOf() = %v, want %v", got, NotFound)
	}
	if got := OpOf(wrapped); got != "catalog.service.Delete" {
		t.Errorf("OpOf() = %q, want outermost op", got)
	}
	if !Is(wrapped, NotFound) {
		t.Error("Is(NotFound) = false, want true")
	}
	if !errors.Is(wrapped, root) {
		t.Error("errors.Is() failed through the chain")
	}

	if got := KindOf(errors.New("plain")); got != Unknown {
		t.Errorf("KindOf(plain) = %v, want Unknown", got)
	}
	if got := KindOf(nil); got != Unknown {
		t.Errorf("KindOf(nil) = %v, want Unknown", got)
	}
	if got := OpOf(nil); got != "" {
		t.Errorf("OpOf(nil) = %q, want empty", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "Unknown"},
		{Invalid, "Invalid"},
		{NotFound, "NotFound"},
		{Unavailable, "Unavailable"},
		{Internal, "Internal"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
