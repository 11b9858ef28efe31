package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// levelRank orders log levels for threshold filtering
var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// ConsoleLogger implements common.GameLogger by printing structured lines
type ConsoleLogger struct {
	out       io.Writer
	clock     shared.Clock
	minLevel  int
	jsonLines bool
}

// NewConsoleLoggerTo creates a logger writing text or json lines to out,
// filtering below the given level (debug, info, warn, error)
func NewConsoleLoggerTo(out io.Writer, level, format string) *ConsoleLogger {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank["INFO"]
	}
	return &ConsoleLogger{
		out:       out,
		clock:     shared.NewRealClock(),
		minLevel:  rank,
		jsonLines: format == "json",
	}
}

// Log prints a timestamped line with sorted metadata key=value pairs. In
// json format the line is one object with time, level, message and the
// metadata keys flattened in.
func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank["INFO"]
	}
	if rank < l.minLevel {
		return
	}

	timestamp := l.clock.Now().Format(time.RFC3339)
	if l.jsonLines {
		record := make(map[string]interface{}, len(metadata)+3)
		for k, v := range metadata {
			record[k] = v
		}
		record["time"] = timestamp
		record["level"] = strings.ToUpper(level)
		record["message"] = message
		line, err := json.Marshal(record)
		if err != nil {
			return
		}
		fmt.Fprintf(l.out, "%s\n", line)
		return
	}

	fmt.Fprintf(l.out, "[%s] %s: %s%s\n",
		timestamp,
		strings.ToUpper(level),
		message,
		formatMetadata(metadata),
	)
}

func formatMetadata(metadata map[string]interface{}) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, metadata[k])
	}
	return b.String()
}
