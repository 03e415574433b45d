// Package logutil provides logging utilities.
//
// Packages keep a logger in a package-level variable:
//
//	var logger = logutil.GetLogger("[edit] ")
//
// All such loggers write to a shared destination that discards everything
// until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix that writes to the shared
// destination.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.Lmicroseconds)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects all loggers obtained from GetLogger, including those
// obtained later, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}

// SetOutputFile opens the named file for appending and redirects all loggers
// to it. If name is empty, logging is turned off. The returned function
// closes the file.
func SetOutputFile(name string) (cleanup func() error, err error) {
	if name == "" {
		SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return func() error {
		SetOutput(io.Discard)
		return f.Close()
	}, nil
}
