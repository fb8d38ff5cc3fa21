package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/MKlolbullen/hashhound/internal/model"
)

// minFields is the smallest field count a line can have and still carry an
// NT hash: username, RID, LM hash, NT hash. The two conventional trailing
// empty fields are not required.
const minFields = 4

// Parse reads a credential dump line by line and returns every well-formed
// record in file order, plus per-pass counters.
//
// Malformed lines (fewer than four colon-delimited fields, or an empty
// username) are logged with their line number, counted and skipped;
// processing always continues. Empty lines are skipped silently. The NT
// hash field is kept exactly as written.
func Parse(r io.Reader) ([]model.Record, model.DumpStats, error) {
	var (
		records []model.Record
		stats   model.DumpStats
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.TotalLines++

		rec, ok := parseLine(line)
		if !ok {
			stats.MalformedLines++
			log.WithField("line", lineNo).Warn("skipping malformed dump line")
			continue
		}
		records = append(records, rec)
		stats.ParsedRecords++
	}
	if err := scanner.Err(); err != nil {
		return nil, model.DumpStats{}, fmt.Errorf("read dump: %w", err)
	}
	return records, stats, nil
}

func parseLine(line string) (model.Record, bool) {
	parts := strings.Split(line, ":")
	if len(parts) < minFields {
		return model.Record{}, false
	}
	username := strings.TrimSpace(parts[0])
	if username == "" {
		return model.Record{}, false
	}
	return model.Record{
		Username: username,
		RID:      parts[1],
		LMHash:   parts[2],
		NTHash:   parts[3],
	}, true
}

// ParseFile opens path and parses it. A missing or unreadable file is a
// fatal condition for the caller: no partial results are returned.
func ParseFile(path string) ([]model.Record, model.DumpStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.DumpStats{}, fmt.Errorf("open dump %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
