package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

const logsDir = "logs"

func InitLogger() error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	var err error
	if ErrorLogger, err = fileLogger("errors.log"); err != nil {
		return err
	}
	if PanicLogger, err = fileLogger("panics.log"); err != nil {
		return err
	}
	return nil
}

func fileLogger(name string) (*log.Logger, error) {
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", name, err)
	}
	return log.New(f, "", 0), nil
}

// LogError пишет ошибку с местом вызова в logs/errors.log
func LogError(err error, context string) {
	logAt(ErrorLogger, "ERROR", 2, context, err)
}

func LogPanic(recovered interface{}, context string) {
	logAt(PanicLogger, "PANIC", 3, context, recovered)
}

func logAt(l *log.Logger, level string, depth int, context string, v interface{}) {
	if l == nil {
		return
	}
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		file = "unknown"
		line = 0
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.Printf("[%s] %s in %s:%d - %s: %v", timestamp, level, filepath.Base(file), line, context, v)
}
