// Package taxonomy loads the occupation/task taxonomy tables (§4.2): task
// statements, task ratings, and occupation titles, all tab-separated with a
// fixed header schema.
package taxonomy

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"airiskmodel/pkg/core/pipeline"
)

// ReadTSV parses a tab-separated file whose header must contain exactly the
// given required columns (extra or missing columns are a SchemaMismatch, per
// §9's "replace dynamic by-name column access ... reject unknown columns").
// Returns each row as a column-name -> value map.
func ReadTSV(data []byte, required []string, subject string) ([]map[string]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, pipeline.SchemaMismatch(subject, "empty file, no header row")
	}
	header := strings.Split(scanner.Text(), "\t")
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, pipeline.SchemaMismatch(subject, fmt.Sprintf("missing required column %q", col))
		}
	}
	if len(header) != len(required) {
		return nil, pipeline.SchemaMismatch(subject, fmt.Sprintf("expected exactly %d columns %v, found %d: %v", len(required), required, len(header), header))
	}

	var rows []map[string]string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		row := make(map[string]string, len(required))
		for _, col := range required {
			i := index[col]
			if i < len(fields) {
				row[col] = strings.TrimSpace(fields[i])
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", subject, err)
	}
	return rows, nil
}
