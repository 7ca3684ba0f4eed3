// Package config loads runtime configuration for the Dungeon Keeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML file passed with --config/-c. JSON is valid YAML, so a
//     JSON file works too.
//  3. Environment variables DK_SERVER_URL, DK_DATABASE_PATH,
//     DK_REQUEST_TIMEOUT and DK_LOG_LEVEL.
//  4. Command-line flags (see Flags), applied only when set explicitly.
//
// # File schema
//
// Durations are strings like "10s" or integer nanoseconds:
//
//	server_url: http://127.0.0.1:8000/api/v1
//	database_path: ~/.dungeonkeeper/dk.db
//	request_timeout: 10s
//	log_level: info
package config
