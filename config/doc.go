// Package config loads eegmst settings from a YAML file, an optional .env file
// and EEGMST_* environment variables, in that order of increasing precedence,
// and builds the slog logger the other packages write to.
package config
