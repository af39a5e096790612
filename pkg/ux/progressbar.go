// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"

	ansi "github.com/k0kubun/go-ansi"
	progressbar "github.com/schollz/progressbar/v3"
)

// ConfirmationsBar returns a callback that renders block confirmations
// progress. Non interactive outputs get one line per new confirmation.
func (ul *UserLog) ConfirmationsBar(title string) func(current, target uint64) {
	var (
		bar  *progressbar.ProgressBar
		last uint64
	)
	return func(current, target uint64) {
		if current > target {
			current = target
		}
		if !ul.Interactive {
			if current != last {
				ul.PrintToUser("%s: %d/%d", title, current, target)
				last = current
			}
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions64(int64(target),
				progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetElapsedTime(false),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(15),
				progressbar.OptionSetDescription(title),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}))
		}
		_ = bar.Set64(int64(current))
		if current == target {
			_ = bar.Finish()
			fmt.Println()
			ul.Info("%s: %d/%d", title, current, target)
		}
	}
}
