package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/the-pinbo/ROBDD/internal/errs"
)

// cliError is a formatted CLI error with context, in the teacher's
// cli/errors.go CLIError shape.
type cliError struct {
	Type    string // "usage", "parse", "contract", "io"
	Message string
	Details string
	Hint    string
}

func (e *cliError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// formatError writes a colorized, multi-line report for err to w,
// switching on its concrete type exactly as the teacher's FormatError
// does for *planner.PlanError vs *CLIError.
func formatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}
	switch e := err.(type) {
	case *errs.Error:
		formatEngineError(w, e, useColor)
	case *cliError:
		formatCLIError(w, e, useColor)
	default:
		fmt.Fprintf(w, "%sError: %s%s\n", Colorize("", ColorRed, useColor), err.Error(), ColorReset)
	}
}

func formatEngineError(w io.Writer, e *errs.Error, useColor bool) {
	fmt.Fprintf(w, "%sError [%s]: %s%s\n", Colorize("", ColorRed, useColor), e.Kind, e.Message, ColorReset)
	if e.Cause != nil {
		fmt.Fprintf(w, "%scaused by: %v%s\n", Colorize("  ", ColorGray, useColor), e.Cause, ColorReset)
	}
	if suggestions, ok := e.Context["suggestions"].([]string); ok && len(suggestions) > 0 {
		fmt.Fprintf(w, "%sdid you mean: %s?%s\n", Colorize("  ", ColorYellow, useColor), strings.Join(suggestions, ", "), ColorReset)
	}
}

func formatCLIError(w io.Writer, e *cliError, useColor bool) {
	fmt.Fprintf(w, "%sError: %s%s\n", Colorize("", ColorRed, useColor), e.Message, ColorReset)
	if e.Details != "" {
		fmt.Fprintf(w, "%s%s%s\n", Colorize("  ", ColorGray, useColor), e.Details, ColorReset)
	}
	if e.Hint != "" {
		fmt.Fprintf(w, "%sHint: %s%s\n", Colorize("", ColorYellow, useColor), e.Hint, ColorReset)
	}
}

// exit codes, in the teacher's cmd/devcmd/main.go constant-block style.
const (
	exitSuccess = 0
	exitUsage   = 1
	exitIO      = 2
	exitParse   = 3
	exitEngine  = 4
)
