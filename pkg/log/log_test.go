package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(100), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestTestLoggerCapture(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Debug("computing kernels", KernelKey, "gaussian", MoleculesKey, 10)
	logger.Info("done")

	if !logger.ContainsMessage("computing kernels") {
		t.Error("expected captured debug message")
	}
	if !logger.ContainsMessage("done") {
		t.Error("expected captured info message")
	}

	var record map[string]interface{}
	line := strings.SplitN(buffer.String(), "\n", 2)[0]
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("captured record is not JSON: %v", err)
	}
	if record[KernelKey] != "gaussian" {
		t.Errorf("missing kernel attribute: %v", record)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	if logger.ContainsMessage("hidden") || logger.ContainsMessage("hidden too") {
		t.Error("records below the minimum level must be dropped")
	}
	if !strings.Contains(buffer.String(), "visible") {
		t.Error("warn record missing")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)
	named := logger.With(ComponentKey, "alchemy")

	named.Info("built matrix")

	if !logger.ContainsMessage("built matrix") {
		t.Error("With must share the parent buffer")
	}
}

func TestTestLoggerEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Info("kernel sweep", ParametersKey, 3)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["message"] != "kernel sweep" {
		t.Errorf("unexpected message: %v", record)
	}
	if record[ParametersKey] != float64(3) {
		t.Errorf("unexpected parameter count attribute: %v", record)
	}
}

func TestZerologLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Error("failed", errTest, "op", "kpca")

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Errorf("error value missing from record: %s", out)
	}
	if !strings.Contains(out, "kpca") {
		t.Errorf("trailing fields missing from record: %s", out)
	}
}

var errTest = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestProviderSwap(t *testing.T) {
	prov, buffer := NewTestLoggerProvider(LevelDebug)
	SetLoggerProvider(prov)
	defer SetLoggerProvider(&zerologProvider{level: zerolog.WarnLevel})

	GetLoggerWithName("gram.local").Debug("swapped provider")

	out := buffer.String()
	if !strings.Contains(out, "swapped provider") {
		t.Error("named logger did not route through the test provider")
	}
	if !strings.Contains(out, "gram.local") {
		t.Error("component name missing")
	}
}
