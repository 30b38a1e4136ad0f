package profile

import (
	"fillable/hydrate"
)

// File represents the root of a profile file.
type File struct {
	// Version of the profile schema.
	Version string `yaml:"version,omitempty"`

	// Profiles is the list of named presets.
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one named query preset.
type Profile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Only is added to the allow-list of the host's query.
	Only StringOrArray `yaml:"only,omitempty"`

	// Exclude is added to the deny-list. Deny wins over Only.
	Exclude StringOrArray `yaml:"exclude,omitempty"`

	// Bucket names the overflow bucket of push fills.
	Bucket string `yaml:"bucket,omitempty"`

	// DynamicFields lets push fills keep undeclared keys as dynamic fields.
	DynamicFields bool `yaml:"dynamic_fields,omitempty"`

	// Default is the fallback value of pull fills.
	Default any `yaml:"default,omitempty"`
}

// StringOrArray accepts either a single string or an array of strings in YAML.
type StringOrArray []string

// Lookup returns the profile with the given name.
func (f *File) Lookup(name string) (*Profile, bool) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], true
		}
	}

	return nil, false
}

// ApplyTo adds the profile's keys to q. It makes Profile a hydrate.Preset.
func (p *Profile) ApplyTo(q *hydrate.Query) error {
	if !p.Only.IsEmpty() {
		if err := q.Only([]string(p.Only)); err != nil {
			return err
		}
	}

	if !p.Exclude.IsEmpty() {
		if err := q.Exclude([]string(p.Exclude)); err != nil {
			return err
		}
	}

	return nil
}

// Options returns the fill options the profile sets.
func (p *Profile) Options() []hydrate.Option {
	var opts []hydrate.Option

	if p.Bucket != "" {
		opts = append(opts, hydrate.WithBucket(p.Bucket))
	}

	if p.DynamicFields {
		opts = append(opts, hydrate.WithDynamicFields())
	}

	if p.Default != nil {
		opts = append(opts, hydrate.WithDefault(p.Default))
	}

	return opts
}
