// Package config provides the settings for logging, key generation and the REST API.
//
// Settings are loaded from a YAML file with environment overrides, validated with
// struct tags and then handed to the logger, the textbook RSA processor and the
// application services.
package config
