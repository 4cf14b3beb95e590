package errortypes

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	base := errors.New("underlying failure")
	err := ConfigError(base, "failed to load configuration")

	if !errors.Is(err, base) {
		t.Error("Expected errors.Is to find the underlying error")
	}

	if !strings.Contains(err.Error(), "failed to load configuration") {
		t.Errorf("Expected message in error string, got '%s'", err.Error())
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("Expected underlying error in error string, got '%s'", err.Error())
	}
}

func TestNilUnderlyingError(t *testing.T) {
	err := InternalError(nil, "something broke")
	if err.Err == nil {
		t.Fatal("Expected a non-nil underlying error placeholder")
	}
	if err.Error() == "" {
		t.Error("Expected non-empty error string")
	}
}

func TestWithField(t *testing.T) {
	err := ValidationError(errors.New("bad input"), "invalid request").
		WithField("server_id", "db-ops").
		WithFields(map[string]interface{}{"attempt": 1})

	if err.Fields["server_id"] != "db-ops" {
		t.Errorf("Expected field server_id='db-ops', got %v", err.Fields["server_id"])
	}
	if err.Fields["attempt"] != 1 {
		t.Errorf("Expected field attempt=1, got %v", err.Fields["attempt"])
	}
}

func TestTypeCheckers(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		isValidation bool
		isConfig     bool
		isInternal   bool
	}{
		{"Validation", ValidationError(errors.New("v"), "m"), true, false, false},
		{"Config", ConfigError(errors.New("c"), "m"), false, true, false},
		{"Internal", InternalError(errors.New("i"), "m"), false, false, true},
		{"Generic", errors.New("plain"), false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidationError(tc.err); got != tc.isValidation {
				t.Errorf("IsValidationError = %v, want %v", got, tc.isValidation)
			}
			if got := IsConfigError(tc.err); got != tc.isConfig {
				t.Errorf("IsConfigError = %v, want %v", got, tc.isConfig)
			}
			if got := IsInternalError(tc.err); got != tc.isInternal {
				t.Errorf("IsInternalError = %v, want %v", got, tc.isInternal)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := ConfigError(errors.New("boom"), "config load failed").
		WithField("path", ".dbopsextconfig")
	LogError(logger, err)

	output := buf.String()
	if !strings.Contains(output, "config load failed") {
		t.Errorf("Expected message in log output, got:\n%s", output)
	}
	if !strings.Contains(output, "config") {
		t.Errorf("Expected error type in log output, got:\n%s", output)
	}

	// Generic errors are logged without structured fields
	buf.Reset()
	LogError(logger, errors.New("plain error"))
	if !strings.Contains(buf.String(), "plain error") {
		t.Errorf("Expected generic error in log output, got:\n%s", buf.String())
	}
}
