// Package config manages user settings stored at ~/.agentkit/config.yaml.
// Values are resolved through Viper with AGENTKIT_* environment variables
// taking precedence over the file. The file itself is validated against an
// embedded JSON Schema so that doctor can flag hand-edits gone wrong.
package config
