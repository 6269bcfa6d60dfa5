package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "VIEW_DEBUG"

var (
	out    io.Writer
	closer io.Closer
	loaded bool
	mu     sync.Mutex
)

// Init opens path for appending and directs debug output to it.
// An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	closeLocked()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	out = f
	closer = f
	return nil
}

// SetOutput directs debug output to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	out = w
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out = nil
	closer = nil
	return err
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return out != nil
}

// loadLocked reads VIEW_DEBUG the first time logging is used.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	// Logging is best effort; a bad path leaves it disabled.
	_ = initLocked(os.Getenv(EnvVar))
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
