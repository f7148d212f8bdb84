// Package logger provides structured logging for ope using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("ope").WithComponent("matcher")
//	log.Debug("pattern compiled", logger.Fields("template", tpl))
package logger
