package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph/entity"
)

// ErrMissingColumn is returned when a configured column is absent from the header.
var ErrMissingColumn = errors.New("dataset: column not found")

// ErrNoFeatures is returned when the header leaves no feature column.
var ErrNoFeatures = errors.New("dataset: no feature columns")

// layout maps header positions to roles.
type layout struct {
	id       int
	group    int // -1 when grouping is disabled
	features []int
	names    []string
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) ([]entity.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses CSV from r into entities, in row order.
// Returns ErrMissingColumn, ErrNoFeatures, wrapped csv errors, or
// entity.ErrInvalid for a record that fails validation.
func Read(r io.Reader, opts ...Option) ([]entity.Entity, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	lay, err := resolveLayout(header, o)
	if err != nil {
		return nil, err
	}

	var (
		out     []entity.Entity
		skipped int
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		name := strings.TrimSpace(cell(rec, lay.id))
		features := make([]float64, len(lay.features))
		for k, col := range lay.features {
			raw := strings.TrimSpace(cell(rec, col))
			v, perr := strconv.ParseFloat(raw, 64)
			if perr != nil {
				log.Debug("non-numeric cell read as 0",
					zap.Int("line", line), zap.String("column", lay.names[k]), zap.String("value", raw))
				v = 0
			} else if math.IsNaN(v) || math.IsInf(v, 0) {
				log.Debug("non-finite cell read as 0",
					zap.Int("line", line), zap.String("column", lay.names[k]), zap.String("value", raw))
				v = 0
			}
			features[k] = v
		}

		e := entity.Entity{ID: name, Features: features}
		if lay.group >= 0 {
			e.Group = strings.TrimSpace(cell(rec, lay.group))
			e.ID = fmt.Sprintf(o.LabelFormat, name, e.Group)
		}
		if name == "" || e.IsZero() {
			skipped++
			log.Debug("row skipped", zap.Int("line", line), zap.Bool("empty_name", name == ""))
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		out = append(out, e)
	}

	log.Info("dataset loaded",
		zap.Int("entities", len(out)),
		zap.Int("skipped", skipped),
		zap.Int("features", len(lay.features)),
	)

	return out, nil
}

// resolveLayout locates the configured columns in header.
func resolveLayout(header []string, o Options) (layout, error) {
	lay := layout{id: -1, group: -1}
	excluded := make(map[string]bool, len(o.Excluded))
	for _, h := range o.Excluded {
		excluded[h] = true
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		switch {
		case h == o.IDColumn && lay.id < 0:
			lay.id = i
		case o.GroupColumn != "" && h == o.GroupColumn && lay.group < 0:
			lay.group = i
		case excluded[h]:
			// not a feature
		default:
			lay.features = append(lay.features, i)
			lay.names = append(lay.names, h)
		}
	}
	if lay.id < 0 {
		return lay, fmt.Errorf("%w: %q", ErrMissingColumn, o.IDColumn)
	}
	if o.GroupColumn != "" && lay.group < 0 {
		return lay, fmt.Errorf("%w: %q", ErrMissingColumn, o.GroupColumn)
	}
	if len(lay.features) == 0 {
		return lay, ErrNoFeatures
	}

	return lay, nil
}

// cell returns rec[i], or "" on short rows.
func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}

	return ""
}
