package seed

import "time"

// Source kinds accepted in Config.Source.
const (
	SourceFile   = "file"
	SourceBucket = "bucket"
)

// Config holds the seeding settings read from the environment.
type Config struct {
	// Production selects path_prod instead of path_dev.
	Production bool `mapstructure:"production" default:"false"`
	// Plan is the path of the plan file.
	Plan string `mapstructure:"plan" default:"seed/plan.yaml"`
	// Source is where record files are read from (file, bucket).
	Source string `mapstructure:"source" default:"file"`
	// Prefix is prepended to source paths when reading from the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// MarkerField is the synthetic id field stripped from records.
	MarkerField string `mapstructure:"marker_field" default:"$metaID"`
	// InsertTimeoutSeconds bounds each insert. Zero waits indefinitely.
	InsertTimeoutSeconds int `mapstructure:"insert_timeout_seconds" default:"0"`
	// LightBorder renders the console report without box-drawing borders.
	LightBorder bool `mapstructure:"light_border" default:"false"`
}

// Options converts the configuration into engine options.
func (c Config) Options() Options {
	return Options{
		Production:    c.Production,
		MarkerField:   c.MarkerField,
		InsertTimeout: time.Duration(c.InsertTimeoutSeconds) * time.Second,
	}
}
