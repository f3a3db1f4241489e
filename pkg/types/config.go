package types

// ConversionConfig holds settings for the revision-to-reStructuredText
// conversion step.
type ConversionConfig struct {
	// Enabled turns on per-revision conversion (the --convert-to-rst flag).
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Script is the path to the moin2rst converter script.
	Script string `json:"script" yaml:"script"`

	// Python is the interpreter used to run the converter script.
	Python string `json:"python" yaml:"python"`
}

// MigrateConfig holds settings for a migration run. It is built explicitly in
// the CLI layer and passed into each component at construction; no component
// reads global state.
type MigrateConfig struct {
	// DataDir is the MoinMoin data directory (contains pages/ and user/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// RepoDir is the target git repository path, created if absent.
	RepoDir string `json:"repo_dir" yaml:"repo_dir"`

	// UsersFile optionally replaces the on-disk user registry with a
	// pre-built JSON mapping of user id to record.
	UsersFile string `json:"users_file,omitempty" yaml:"users_file,omitempty"`

	// DefaultEmail is the author email used when a user is unknown or has
	// no email attribute.
	DefaultEmail string `json:"default_email" yaml:"default_email"`

	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
}

// AttachmentsConfig holds settings for the attachment copy run.
type AttachmentsConfig struct {
	// DataDir is the MoinMoin data directory (contains pages/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DestDir is the destination tree for copied attachments.
	DestDir string `json:"dest_dir" yaml:"dest_dir"`
}
