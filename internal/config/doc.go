// Package config provides configuration loading, merging, and validation
// for the speech analytics server.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables (a dotenv file is loaded first)
//  4. Command-line flags
//
// DATABASE_URL and KEYCLOAK_CERTS_URL are mandatory; [GetStructuredConfig]
// fails when either is missing.
package config
