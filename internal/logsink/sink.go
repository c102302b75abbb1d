package logsink

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrNotFound signals that no activity log has been written yet.
var ErrNotFound = errors.New("log not found")

// Sink is one domain's append-only activity log. Every engine call's outcome
// is recorded here independently of whatever the caller does with the
// result. The underlying file is opened on first write and owned by the
// sink until Close.
type Sink struct {
	path string

	mu     sync.Mutex
	file   *os.File
	logger *zap.SugaredLogger
}

// New prepares the sink for a domain. The log lives at
// <dir>/<domain>_analysis.log; nothing is created until the first write.
func New(dir, domain string) *Sink {
	return &Sink{path: filepath.Join(dir, domain+"_analysis.log")}
}

// Path returns the log file location.
func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) ensure() *zap.SugaredLogger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logger != nil {
		return s.logger
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " - "
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(file), zap.InfoLevel)

	s.file = file
	s.logger = zap.New(core).Sugar()
	return s.logger
}

// Infof appends an info line. Sink writes are best-effort; a broken log
// file never fails the operation being logged.
func (s *Sink) Infof(format string, args ...interface{}) {
	if logger := s.ensure(); logger != nil {
		logger.Infof(format, args...)
	}
}

// Errorf appends an error line with full diagnostic context.
func (s *Sink) Errorf(format string, args ...interface{}) {
	if logger := s.ensure(); logger != nil {
		logger.Errorf(format, args...)
	}
}

// Read returns the full current log content, or ErrNotFound when no log has
// been written yet.
func (s *Sink) Read() (string, error) {
	s.mu.Lock()
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Close flushes and releases the log file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logger == nil {
		return nil
	}
	_ = s.logger.Sync()
	err := s.file.Close()
	s.logger = nil
	s.file = nil
	return err
}
