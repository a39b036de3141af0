package app

import (
	"io"
	"os"

	"paritybalance/internal/balance"
	ilogger "paritybalance/internal/logger"
)

const toolName = ilogger.ToolName

// version is set with -ldflags "-X paritybalance/internal/app.version=...".
var version = "dev"

var (
	exitFn                 = os.Exit
	stdinReader  io.Reader = os.Stdin
	stdoutWriter io.Writer = os.Stdout
	stderrWriter io.Writer = os.Stderr

	solveFn = balance.Solve
)
