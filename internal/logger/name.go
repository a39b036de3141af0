package logger

import "path/filepath"

// ToolName prefixes every log file this binary writes.
const ToolName = "paritybalance"

// LogGlob matches log files of any paritybalance process under dir.
func LogGlob(dir string) string { return filepath.Join(dir, ToolName+"-*.log") }
