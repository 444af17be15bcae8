// Package config manages user-level settings stored at ~/.cppinit/config.yaml.
// It loads, reads, writes and validates keys such as the default for --git
// and the branch name passed to git init.
package config
