package snapshot

import (
	"path"
	"time"
)

// Config holds configuration for reading snapshots and building the collection.
type Config struct {
	// Dir reads snapshots from a local directory instead of the bucket when set.
	Dir string `mapstructure:"dir" default:""`
	// Prefix is the object prefix (or subdirectory) holding the snapshot.
	Prefix string `mapstructure:"prefix" default:"snapshots/latest"`
	// Object names within the prefix.
	PictureBook    string `mapstructure:"picturebook" default:"picturebook.json"`
	Roster         string `mapstructure:"roster" default:"roster.json"`
	Marriage       string `mapstructure:"marriage" default:"marriage.csv"`
	WikiUnmodified string `mapstructure:"wiki_unmodified" default:"wiki_unmodified.json"`
	WikiModified   string `mapstructure:"wiki_modified" default:"wiki_modified.json"`
	Blueprints     string `mapstructure:"blueprints" default:"blueprints.json"`
	// CacheTTLSeconds is how long a built collection is served before rebuilding. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// ClassifierTable is an optional YAML file extending the built-in page classification table.
	ClassifierTable string `mapstructure:"classifier_table" default:""`
	// SkipInvalid skips offending records instead of failing the build.
	SkipInvalid bool `mapstructure:"skip_invalid" default:"false"`
	// UpgradePolicy is the default blueprint spending policy (prefer_affordable, save_for_unknown).
	UpgradePolicy string `mapstructure:"upgrade_policy" default:"prefer_affordable"`
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Layout returns the object layout described by the configuration.
func (c Config) Layout() Layout {
	return Layout{
		Prefix:         c.Prefix,
		PictureBook:    c.PictureBook,
		Roster:         c.Roster,
		Marriage:       c.Marriage,
		WikiUnmodified: c.WikiUnmodified,
		WikiModified:   c.WikiModified,
		Blueprints:     c.Blueprints,
	}
}

// Layout names the objects of one snapshot.
type Layout struct {
	Prefix         string
	PictureBook    string
	Roster         string
	Marriage       string
	WikiUnmodified string
	WikiModified   string
	Blueprints     string
}

// Object is one object of a snapshot layout.
type Object struct {
	// Path is the object name joined with the layout prefix.
	Path     string `json:"path"`
	Required bool   `json:"required"`
}

// Path joins name with the layout prefix.
func (l Layout) Path(name string) string {
	return path.Join(l.Prefix, name)
}

// Objects lists every object of the layout. Picture book and roster are required.
func (l Layout) Objects() []Object {
	return []Object{
		{Path: l.Path(l.PictureBook), Required: true},
		{Path: l.Path(l.Roster), Required: true},
		{Path: l.Path(l.Marriage)},
		{Path: l.Path(l.WikiUnmodified)},
		{Path: l.Path(l.WikiModified)},
		{Path: l.Path(l.Blueprints)},
	}
}
