package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldTarget     = "target"
	FieldPatch      = "patch"
	FieldBackup     = "backup"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldDryRun     = "dry_run"
	FieldBackupMode = "backup_mode"
	FieldContext    = "context"
	FieldConfigFile = "config_file"

	// Statistics fields.
	FieldHunks     = "hunks"
	FieldAdditions = "additions"
	FieldDeletions = "deletions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
