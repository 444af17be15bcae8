// Package platform wraps the operating system pieces the scaffolder touches:
// file creation in the project directory and the git binary on PATH.
package platform
