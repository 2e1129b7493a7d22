package fill

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/voxel"
)

var fillMagic = [4]byte{'V', 'F', 'I', 'L'}

const fillVersion uint32 = 1

// WriteTo serializes rec to w as a header (magic, version, metric tag,
// threshold, spacing) followed by one fixed-width row per entry:
// x, y, z (int32), g (float64), prev (int32), open (bool).
func (rec Record) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	counter := &countingWriter{w: bw}
	le := binary.LittleEndian
	write := func(v any) error { return binary.Write(counter, le, v) }

	if _, err := counter.Write(fillMagic[:]); err != nil {
		return counter.n, fmt.Errorf("fill: write magic: %w", err)
	}
	if err := write(fillVersion); err != nil {
		return counter.n, fmt.Errorf("fill: write version: %w", err)
	}

	tag := []byte(rec.Metric)
	if err := write(uint32(len(tag))); err != nil {
		return counter.n, err
	}
	if _, err := counter.Write(tag); err != nil {
		return counter.n, err
	}

	if err := write(rec.Threshold); err != nil {
		return counter.n, err
	}
	if err := write(rec.Spacing.SX); err != nil {
		return counter.n, err
	}
	if err := write(rec.Spacing.SY); err != nil {
		return counter.n, err
	}
	if err := write(rec.Spacing.SZ); err != nil {
		return counter.n, err
	}
	units := []byte(rec.Spacing.Units)
	if err := write(uint32(len(units))); err != nil {
		return counter.n, err
	}
	if _, err := counter.Write(units); err != nil {
		return counter.n, err
	}

	if err := write(uint32(len(rec.Entries))); err != nil {
		return counter.n, err
	}
	for _, e := range rec.Entries {
		if err := write(e.X); err != nil {
			return counter.n, err
		}
		if err := write(e.Y); err != nil {
			return counter.n, err
		}
		if err := write(e.Z); err != nil {
			return counter.n, err
		}
		if err := write(e.G); err != nil {
			return counter.n, err
		}
		if err := write(e.PrevIndex); err != nil {
			return counter.n, err
		}
		if err := write(e.Open); err != nil {
			return counter.n, err
		}
	}

	return counter.n, bw.Flush()
}

// ReadFrom reads a Record previously written by WriteTo, rejecting an
// unrecognized magic/version or an unknown metric tag.
func ReadFrom(r io.Reader) (Record, error) {
	br := bufio.NewReader(r)
	le := binary.LittleEndian
	read := func(v any) error { return binary.Read(br, le, v) }

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return Record{}, fmt.Errorf("fill: read magic: %w", err)
	}
	if magic != fillMagic {
		return Record{}, fmt.Errorf("%w: bad magic %q", ErrCorruptFill, magic[:])
	}

	var version uint32
	if err := read(&version); err != nil {
		return Record{}, fmt.Errorf("fill: read version: %w", err)
	}
	if version != fillVersion {
		return Record{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptFill, version)
	}

	var tagLen uint32
	if err := read(&tagLen); err != nil {
		return Record{}, err
	}
	tagBytes := make([]byte, tagLen)
	if _, err := io.ReadFull(br, tagBytes); err != nil {
		return Record{}, err
	}
	metric := costfn.MetricTag(tagBytes)
	if !costfn.KnownMetrics[metric] {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	var threshold, sx, sy, sz float64
	if err := read(&threshold); err != nil {
		return Record{}, err
	}
	if err := read(&sx); err != nil {
		return Record{}, err
	}
	if err := read(&sy); err != nil {
		return Record{}, err
	}
	if err := read(&sz); err != nil {
		return Record{}, err
	}

	var unitsLen uint32
	if err := read(&unitsLen); err != nil {
		return Record{}, err
	}
	unitsBytes := make([]byte, unitsLen)
	if _, err := io.ReadFull(br, unitsBytes); err != nil {
		return Record{}, err
	}

	var count uint32
	if err := read(&count); err != nil {
		return Record{}, err
	}

	entries := make([]Entry, count)
	for i := range entries {
		var e Entry
		if err := read(&e.X); err != nil {
			return Record{}, err
		}
		if err := read(&e.Y); err != nil {
			return Record{}, err
		}
		if err := read(&e.Z); err != nil {
			return Record{}, err
		}
		if err := read(&e.G); err != nil {
			return Record{}, err
		}
		if err := read(&e.PrevIndex); err != nil {
			return Record{}, err
		}
		if err := read(&e.Open); err != nil {
			return Record{}, err
		}
		if e.PrevIndex < -1 || int(e.PrevIndex) >= int(count) {
			return Record{}, fmt.Errorf("%w: entry %d has prev index %d out of range for %d entries", ErrCorruptFill, i, e.PrevIndex, count)
		}
		entries[i] = e
	}

	return Record{
		Entries:   entries,
		Threshold: threshold,
		Metric:    metric,
		Spacing:   voxel.Spacing{SX: sx, SY: sy, SZ: sz, Units: string(unitsBytes)},
	}, nil
}

// countingWriter tracks bytes written so WriteTo can report its total
// even when an intermediate write fails partway through the header.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
