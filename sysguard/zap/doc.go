// Package zap provides adapters and helpers around zap-based logging.
//
// It bridges the sysguard/log abstraction to zap while preserving structured
// fields and trace correlation from context.
package zap
