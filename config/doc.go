// Package config loads cluster-extraction parameters from YAML and turns
// them into configured extractors and indexes.
package config
