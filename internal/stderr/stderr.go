//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, PulseAudio)
// write straight to file descriptor 2. Left alone it would corrupt the TUI,
// so captured lines go to the log file instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe and logs every non-empty line at warn
// level. Call it before the speaker is initialized. On error the program
// keeps writing to the real stderr.
func Start(log *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead != nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go drain(r, log.Named("stderr"), done)
	return nil
}

func drain(r *os.File, log *zap.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.Warn("captured stderr", zap.String("line", line))
		}
	}
}

// WriteOriginal writes to the real stderr, bypassing capture. Used for
// fatal errors that must reach the user once the TUI is gone.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for buffered lines to be logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	// Closing the write end ends the scanner; the duplicate on fd 2 was
	// replaced above.
	pipeWrite.Close()
	<-done
	pipeRead.Close()
	pipeRead = nil
	pipeWrite = nil
}
