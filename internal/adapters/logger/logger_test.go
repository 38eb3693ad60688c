package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"go.trai.ch/crateq/internal/adapters/logger"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	// Save the original stderr
	originalStderr := os.Stderr

	// Create a pipe to capture stderr
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	// Replace os.Stderr with the write end of the pipe
	os.Stderr = w

	// Create a channel to signal when reading is complete
	done := make(chan string, 1)

	// Start reading in a goroutine
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	// Execute the function
	fn()

	// Close the write end of the pipe to signal EOF to the reader
	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	// Wait for the reading to complete
	output := <-done

	// Close the read end
	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	// Restore the original stderr
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	// Capture stderr output
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	// Assert that the output contains "some message"
	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}

	// Assert that the output contains "INFO"
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	// Capture stderr output
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	// Assert that the output contains the error message
	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}

	// Assert that the output contains the error level
	if !strings.Contains(output, "ERRO") {
		t.Errorf("Expected output to contain 'ERRO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	// Capture stderr output
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Warn("some warning")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	// Assert that the output contains "some warning"
	if !strings.Contains(output, "some warning") {
		t.Errorf("Expected output to contain 'some warning', got: %s", output)
	}

	// Assert that the output contains "WARN"
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestNew(t *testing.T) {
	// Test that New() returns a non-nil logger
	lg := logger.New()

	if lg == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}

	// Test that the returned logger can be used
	// This test ensures the logger is properly initialized
	output, err := captureStderr(func() {
		// Create a fresh logger to ensure it uses the redirected stderr
		testLogger := logger.New()
		testLogger.Info("test initialization")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "test initialization") {
		t.Errorf("Expected logger to log 'test initialization', got: %s", output)
	}
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no index cache entry"), "package", "left-pad")
	lg.Error(err)

	output := buf.String()
	if !strings.Contains(output, "no index cache entry: package not found") {
		t.Errorf("Expected output to contain the error chain, got: %s", output)
	}
	if !strings.Contains(output, "package=left-pad") {
		t.Errorf("Expected output to contain the error metadata, got: %s", output)
	}
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden by default")
	if strings.Contains(buf.String(), "hidden by default") {
		t.Errorf("Expected debug output to be suppressed at info level, got: %s", buf.String())
	}

	lg.SetLevel(domain.LogLevelDebug)
	lg.Debug("visible after SetLevel")
	if !strings.Contains(buf.String(), "visible after SetLevel") {
		t.Errorf("Expected debug output after SetLevel, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "DEBU") {
		t.Errorf("Expected output to contain 'DEBU', got: %s", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetLevel(domain.LogLevelWarn)

	lg.SetOutput(&second)
	lg.Info("dropped")
	lg.Warn("moved")

	if first.Len() != 0 {
		t.Errorf("Expected nothing on the previous writer, got: %s", first.String())
	}
	if strings.Contains(second.String(), "dropped") {
		t.Errorf("Expected the level to survive SetOutput, got: %s", second.String())
	}
	if !strings.Contains(second.String(), "moved") {
		t.Errorf("Expected output on the new writer, got: %s", second.String())
	}
}
