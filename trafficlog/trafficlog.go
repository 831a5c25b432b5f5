// Package trafficlog implements the traffic-log file format from spec §6:
// plain text, one request per line, space-separated fields
// "<unix_epoch_seconds> <object_id> <size_bytes> <ttl_seconds>". The format
// is produced by the traffic-generator collaborator (out of scope here —
// see original_source/cache-simulator/src/bin/traffic_generator.rs) and
// consumed by cache simulations; this package exists only so the core can
// round-trip it in tests and replay a captured log through any engine via
// cmd/cachedemo.
package trafficlog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one traffic-log entry. Records in a well-formed log are
// monotonically non-decreasing in UnixSeconds; ObjectID is a stable
// integer; SizeBytes and TTLSeconds are positive.
type Record struct {
	UnixSeconds int64
	ObjectID    int64
	SizeBytes   int64
	TTLSeconds  int64
}

// WriteRecords writes recs to w, one per line, in the traffic-log format.
func WriteRecords(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", r.UnixSeconds, r.ObjectID, r.SizeBytes, r.TTLSeconds); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRecords reads every record from r. Blank lines are skipped; any other
// malformed line is a fatal parse error naming the offending line number.
func ReadRecords(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var out []Record
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("trafficlog: line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("want 4 space-separated fields, got %d", len(fields))
	}
	vals := make([]int64, 4)
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %w", i, err)
		}
		vals[i] = n
	}
	return Record{UnixSeconds: vals[0], ObjectID: vals[1], SizeBytes: vals[2], TTLSeconds: vals[3]}, nil
}
