// Package logger provides the levelled console/file logger used by the
// command line tools.
package logger
