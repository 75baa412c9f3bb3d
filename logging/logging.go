package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// callDepth skips the helper frame so Lshortfile reports the caller.
const callDepth = 3

func output(level, format string, args ...any) {
	_ = log.Output(callDepth, level+" "+fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { output("DEBUG", format, args...) }
func Infof(format string, args ...any)  { output("INFO", format, args...) }
func Warnf(format string, args ...any)  { output("WARN", format, args...) }
func Errorf(format string, args ...any) { output("ERROR", format, args...) }
