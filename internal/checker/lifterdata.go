package checker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// LifterData is the ambient, optional lookup from username to
// out-of-band facts about that lifter. The row driver consults it only
// in the post-file
// inference pass, never per-field, to decide whether an ambiguous
// username must be flagged pending manual disambiguation.
type LifterData struct {
	// DisambiguationCount is how many distinct lifters are already known
	// to share this username; a count above zero means the plain
	// username (with no "#N" suffix) is ambiguous and, when the
	// directory's config requires manual disambiguation, must be
	// reported rather than silently accepted.
	DisambiguationCount int
}

// LifterDataMap is the full ambient lookup table, keyed by username.
type LifterDataMap map[string]LifterData

// LoadLifterData reads the optional lifter-data sidecar file: a
// "Username,DisambiguationCount" header followed by one row per username
// known to collide with another lifter. Like entries.csv and meet.csv it
// carries no quoting and a plain newline terminator, so it uses the same
// splitUnquotedLine convention rather than encoding/csv.
func LoadLifterData(r io.Reader, path string) (LifterDataMap, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return LifterDataMap{}, nil
	}
	header := splitUnquotedLine(scanner.Text())

	usernameCol, countCol := -1, -1
	for i, h := range header {
		switch h {
		case "Username":
			usernameCol = i
		case "DisambiguationCount":
			countCol = i
		}
	}
	if usernameCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("lifterdata: %s: missing Username or DisambiguationCount column", path)
	}

	data := make(LifterDataMap)
	line := 1
	for scanner.Scan() {
		line++
		row := splitUnquotedLine(scanner.Text())
		if usernameCol >= len(row) || countCol >= len(row) {
			return nil, fmt.Errorf("lifterdata: %s: line %d: missing columns", path, line)
		}
		count, err := strconv.Atoi(row[countCol])
		if err != nil {
			return nil, fmt.Errorf("lifterdata: %s: line %d: invalid DisambiguationCount: %w", path, line, err)
		}
		data[row[usernameCol]] = LifterData{DisambiguationCount: count}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lifterdata: %s: %w", path, err)
	}
	return data, nil
}
