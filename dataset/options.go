package dataset

import "go.uber.org/zap"

// Default column layout.
const (
	DefaultIDColumn    = "Full Team Name"
	DefaultGroupColumn = "Season"
	DefaultLabelFormat = "%s (%s)"
)

// DefaultExcludedColumns are dropped from the feature vector by default.
var DefaultExcludedColumns = []string{"Seed"}

// Option customizes Read and Load.
type Option func(*Options)

// Options is the resolved reader configuration.
type Options struct {
	IDColumn    string
	GroupColumn string
	Excluded    []string
	LabelFormat string
	Logger      *zap.Logger
}

// DefaultOptions returns the NCAA layout with a no-op logger.
func DefaultOptions() Options {
	return Options{
		IDColumn:    DefaultIDColumn,
		GroupColumn: DefaultGroupColumn,
		Excluded:    append([]string(nil), DefaultExcludedColumns...),
		LabelFormat: DefaultLabelFormat,
		Logger:      zap.NewNop(),
	}
}

// WithIDColumn sets the header of the name column. Empty is ignored.
func WithIDColumn(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.IDColumn = name
		}
	}
}

// WithGroupColumn sets the header of the group column.
// Empty disables grouping: IDs are the bare names.
func WithGroupColumn(name string) Option {
	return func(o *Options) { o.GroupColumn = name }
}

// WithExcludedColumns replaces the list of non-feature columns.
func WithExcludedColumns(names ...string) Option {
	return func(o *Options) { o.Excluded = append([]string(nil), names...) }
}

// WithLabelFormat sets the fmt pattern combining name and group into the ID.
// It receives exactly two %s verbs. Empty is ignored.
func WithLabelFormat(format string) Option {
	return func(o *Options) {
		if format != "" {
			o.LabelFormat = format
		}
	}
}

// WithLogger attaches a logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
