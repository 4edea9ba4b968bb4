package astrolog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

var mu sync.Mutex

// Config selects the log level and the console and file outputs.
type Config struct {
	LogLevel    string
	LogToFile   bool
	LogDir      string
	LogFileName string
	Formatted   bool
	MaxFileSize int
	MaxLogFiles int

	// Console receives the human readable stream; nil means stderr.
	Console io.Writer
	NoColor bool
	// RunLabel is printed in the banner that opens each run in the log file.
	RunLabel string
}

// =============================
// Console Writer
// =============================

// ConsoleWriterWithLevel wraps zerolog.ConsoleWriter to satisfy the LevelWriter interface.
type ConsoleWriterWithLevel struct {
	zerolog.ConsoleWriter
}

// WriteLevel reports len(p) back to zerolog: ConsoleWriter rewrites the JSON
// entry into a line of a different length, which zerolog would flag as a short write.
func (c ConsoleWriterWithLevel) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

// =============================
// File Writer
// =============================

// FileWriterWithLevel writes entries to a rotating file, either as raw JSON or
// as one formatted line per entry.
type FileWriterWithLevel struct {
	*lumberjack.Logger
	Formatted bool
}

func (f FileWriterWithLevel) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if !f.Formatted {
		return f.Logger.Write(p)
	}
	formatted, err := formatLogEntry(level, p)
	if err != nil {
		return f.Logger.Write(p)
	}
	_, err = f.Logger.Write([]byte(formatted))
	return len(p), err
}

// =============================
// Formatting Helpers
// =============================

// formatLogEntry turns a zerolog JSON entry into
// "time | level | caller | message | key=value ...".
func formatLogEntry(level zerolog.Level, p []byte) (string, error) {
	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return "", err
	}

	timestamp, _ := entry["time"].(string)
	message, _ := entry["message"].(string)
	caller, _ := entry["caller"].(string)

	return fmt.Sprintf("%s | %-5s | %-20s | %s | %s\n",
		timestamp,
		level.String(),
		caller,
		message,
		strings.Join(collectExtraFields(entry), " "),
	), nil
}

// stripCallerPath turns "pkg/astropath/pathfinder.go" into "pathfinder".
func stripCallerPath(file string) string {
	if file == "" {
		return file
	}
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// collectExtraFields returns sorted key=value pairs for the non-standard fields.
func collectExtraFields(entry map[string]interface{}) []string {
	var extras []string
	for k, v := range entry {
		switch k {
		case zerolog.TimestampFieldName, zerolog.MessageFieldName, zerolog.LevelFieldName, zerolog.CallerFieldName:
			continue
		}
		extras = append(extras, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extras)
	return extras
}

// =============================
// Run Separator
// =============================

// runBanner frames the start of a run so consecutive runs in the same file stay apart.
func runBanner(label string, now time.Time) string {
	lines := []string{
		"  ▶  RUN STARTED",
		"  Started : " + now.Format("2006-01-02 15:04:05"),
	}
	if label != "" {
		lines = append(lines, "  Input   : "+label)
	}

	width := 50
	for _, l := range lines {
		if n := len([]rune(l)) + 4; n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("\n┌" + strings.Repeat("─", width) + "┐\n")
	for i, l := range lines {
		b.WriteString("│" + l + strings.Repeat(" ", width-len([]rune(l))) + "│\n")
		if i == 0 {
			b.WriteString("├" + strings.Repeat("─", width) + "┤\n")
		}
	}
	b.WriteString("└" + strings.Repeat("─", width) + "┘\n\n")
	return b.String()
}

// =============================
// File Cleanup
// =============================

// deleteOldLogFiles keeps at most maxFiles ".log" files in logDir, removing the oldest first.
func deleteOldLogFiles(logDir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return err
	}

	type logFile struct {
		name    string
		modTime time.Time
	}
	var logFiles []logFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFile{name: entry.Name(), modTime: info.ModTime()})
	}

	if len(logFiles) <= maxFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	for _, file := range logFiles[:len(logFiles)-maxFiles] {
		if err := os.Remove(filepath.Join(logDir, file.name)); err != nil {
			log.Err(err).Msgf("Failed to delete old log file: %s", file.name)
		}
	}
	return nil
}

// =============================
// Init Logger
// =============================

// InitLogger sets up the global zerolog logger with console and optional file output.
func InitLogger(cfg Config) {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().Local()
	}
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", stripCallerPath(file), line)
	}

	writers := []io.Writer{buildConsoleWriter(cfg)}

	if cfg.LogToFile {
		if fw := buildFileWriter(cfg); fw != nil {
			writers = append(writers, fw)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()

	UpdateLogLevel(cfg.LogLevel)
}

// =============================
// Console Builder
// =============================

func buildConsoleWriter(cfg Config) ConsoleWriterWithLevel {
	out := cfg.Console
	if out == nil {
		out = os.Stderr
	}
	return ConsoleWriterWithLevel{
		ConsoleWriter: zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: timeFormat,
			FormatCaller: func(i interface{}) string {
				caller, _ := i.(string)
				if cfg.NoColor {
					return caller
				}
				return "\033[34m" + caller + "\033[0m"
			},
		},
	}
}

// =============================
// File Builder
// =============================

// buildFileWriter creates the rotating file writer, returning nil on setup failure.
// Files are named by day so every run of the same day appends to one file.
func buildFileWriter(cfg Config) *FileWriterWithLevel {
	logDir := cfg.LogDir
	if logDir == "" {
		logDir = "./logs"
	}
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Err(err).Msg("Failed to create log directory")
		return nil
	}

	if err := deleteOldLogFiles(logDir, cfg.MaxLogFiles); err != nil {
		log.Err(err).Msg("Failed to clean old log files")
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName(cfg, time.Now())),
		MaxSize:    cfg.MaxFileSize,
		MaxBackups: 3,
		MaxAge:     30,
	}

	_, _ = lj.Write([]byte(runBanner(cfg.RunLabel, time.Now())))

	return &FileWriterWithLevel{
		Logger:    lj,
		Formatted: cfg.Formatted,
	}
}

func logFileName(cfg Config, day time.Time) string {
	name := cfg.LogFileName
	if name == "" {
		name = "astrotiles"
	}
	suffix := "_json"
	if cfg.Formatted {
		suffix = ""
	}
	return fmt.Sprintf("%s_%s%s.log", name, day.Format("02-01-2006"), suffix)
}

// =============================
// Log Level
// =============================

// UpdateLogLevel sets the global level from a string such as "debug" or "warn".
// Unrecognized values fall back to info.
func UpdateLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
