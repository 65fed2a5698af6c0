package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger логгер сервиса с printf-style интерфейсом поверх logrus.
// Пишет в файл, если он указан, иначе в stdout.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New создает новый логгер.
// file — путь к файлу логов (пустая строка — stdout), level — уровень логирования
// (debug, info, warn, error).
func New(file string, level string) (*Logger, error) {
	log := logrus.New()

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsedLevel)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	l := &Logger{log: log}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", file, err)
		}
		log.SetOutput(f)
		l.file = f
	}

	return l, nil
}

// Debug логирует сообщение с уровнем debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

// Info логирует сообщение с уровнем info
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Warn логирует сообщение с уровнем warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

// Error логирует сообщение с уровнем error
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal логирует сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
