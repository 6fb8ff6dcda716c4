// Package config loads and validates the job board configuration from
// defaults, an optional YAML file, a .env file and JOBBOARD_* environment
// variables.
package config
