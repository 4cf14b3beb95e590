package registry

import (
	"reflect"
	"testing"

	"github.com/dbops-mcp/zed-extension/internal/errortypes"
	"github.com/dbops-mcp/zed-extension/internal/extension"
)

func TestRegisterAndLookup(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	ext := extension.New()
	if err := Register("database-operations", ext); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, ok := Lookup("database-operations")
	if !ok {
		t.Fatal("Expected extension to be registered")
	}
	if got != ext {
		t.Error("Lookup returned a different extension instance")
	}

	if _, ok := Lookup("missing"); ok {
		t.Error("Expected lookup of unregistered name to fail")
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Register("", extension.New()); err == nil {
		t.Error("Expected error registering empty name")
	} else if !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}

	if err := Register("database-operations", nil); err == nil {
		t.Error("Expected error registering nil extension")
	} else if !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Register("database-operations", extension.New()); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	err := Register("database-operations", extension.New())
	if err == nil {
		t.Fatal("Expected error registering duplicate name")
	}
	if !errortypes.IsConfigError(err) {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestNames(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if names := Names(); len(names) != 0 {
		t.Fatalf("Expected empty registry, got %v", names)
	}

	for _, name := range []string{"zeta", "alpha", "database-operations"} {
		if err := Register(name, extension.New()); err != nil {
			t.Fatalf("Register %q failed: %v", name, err)
		}
	}

	want := []string{"alpha", "database-operations", "zeta"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected names %v, got %v", want, got)
	}
}

func TestReset(t *testing.T) {
	Reset()

	if err := Register("database-operations", extension.New()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	Reset()

	if _, ok := Lookup("database-operations"); ok {
		t.Error("Expected registry to be empty after Reset")
	}
}
