package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", LogInfo, func(l *log.Logger) { l.Info("loaded jobs") }, true},
		{"debug at info", LogInfo, func(l *log.Logger) { l.Debug("layout") }, false},
		{"debug at debug", LogDebug, func(l *log.Logger) { l.Debug("layout") }, true},
		{"warn at info", LogInfo, func(l *log.Logger) { l.Warn("begin after end") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("rendered")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).Match(buf.Bytes()) {
		t.Errorf("log line %q should start with HH:MM:SS.ms", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Rendered 3 jobs")

	if !regexp.MustCompile(`Rendered 3 jobs \(\d+(ms|s|µs|ns)?\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	l := newLogger(io.Discard, LogInfo)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestAttachLogFile(t *testing.T) {
	var console bytes.Buffer
	c := New(&console, LogInfo)
	path := filepath.Join(t.TempDir(), "jobtimeline.log")

	if err := c.attachLogFile(path); err != nil {
		t.Fatalf("attachLogFile() error = %v", err)
	}
	c.Logger.Info("served request")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("served request")) {
		t.Errorf("log file = %q, want the message", data)
	}
	if !bytes.Contains(console.Bytes(), []byte("served request")) {
		t.Error("console should still receive the message")
	}
}

func TestAttachLogFileInvalidPath(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if err := c.attachLogFile(""); err == nil {
		t.Error("empty log path should fail")
	}
}
