// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Logger *UserLog

type UserLog struct {
	log    *zap.Logger
	Writer io.Writer
	// Interactive enables spinners and progress bars. Only set for terminals.
	Interactive bool
}

// New creates a user facing logger that writes to [userwriter] and mirrors
// every line into [log]
func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:         log,
		Writer:      userwriter,
		Interactive: IsTerminal(userwriter),
	}
}

// NewUserLog sets the global user logger, if not already set
func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = New(log, userwriter)
	}
}

// IsTerminal indicates if [w] is attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.print(fmt.Sprintf(msg, args...) + "\n")
}

func (ul *UserLog) print(msg string) {
	if ul != nil {
		fmt.Fprint(ul.Writer, msg)
		ul.log.Info(strings.TrimSuffix(msg, "\n"))
	} else {
		fmt.Print(msg)
	}
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.log.Error(fmt.Sprintf(msg, args...))
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓" // Unicode for checkmark symbol
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗" // Unicode for X symbol
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) YellowToUser(msg string, args ...interface{}) {
	yellow := color.New(color.FgHiYellow).SprintFunc()
	ul.PrintToUser("%s", yellow(fmt.Sprintf(msg, args...)))
}

func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}
