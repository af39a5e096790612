// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chelnak/ysmrr"
	"github.com/chelnak/ysmrr/pkg/animations"
	"github.com/chelnak/ysmrr/pkg/colors"
)

type UserSpinner struct {
	spinner ysmrr.SpinnerManager
	log     *UserLog
	started bool
	mutex   sync.Mutex
}

func newSpinner(writer io.Writer) ysmrr.SpinnerManager {
	if writer == nil {
		writer = os.Stdout
	}
	return ysmrr.NewSpinnerManager(
		ysmrr.WithAnimation(animations.Dots),
		ysmrr.WithSpinnerColor(colors.FgHiBlue),
		ysmrr.WithWriter(writer),
	)
}

func (ul *UserLog) NewUserSpinner() *UserSpinner {
	return &UserSpinner{spinner: newSpinner(ul.Writer), log: ul}
}

func (us *UserSpinner) Stop() {
	us.mutex.Lock()
	if us.started {
		us.spinner.Stop()
		us.started = false
	}
	us.mutex.Unlock()
}

func (us *UserSpinner) SpinToUser(msg string, args ...interface{}) *ysmrr.Spinner {
	formattedMsg := fmt.Sprintf(msg, args...)
	us.log.Info("%s", formattedMsg+" [Spinner Start]")
	sp := us.spinner.AddSpinner(formattedMsg)
	us.mutex.Lock()
	if !us.started {
		us.spinner.Start()
		us.started = true
	}
	us.mutex.Unlock()
	return sp
}

func (us *UserSpinner) SpinFailWithError(s *ysmrr.Spinner, txt string, err error) {
	if txt == "" {
		s.UpdateMessage(fmt.Sprintf("%s err:%v", s.GetMessage(), err))
	} else {
		s.UpdateMessage(fmt.Sprintf("%s txt:%s err:%v", s.GetMessage(), txt, err))
	}
	s.Error()
	us.log.Info("%s", s.GetMessage()+" [Spinner Err]")
}

func (us *UserSpinner) SpinComplete(s *ysmrr.Spinner) {
	if s.IsComplete() {
		return
	}
	s.Complete()
	us.log.Info("%s", s.GetMessage()+" [Spinner Complete]")
}

// Wait shows [msg] while a blocking operation runs. The returned func must be
// called with the operation outcome. Non interactive outputs get a plain line.
func (ul *UserLog) Wait(msg string, args ...interface{}) func(error) {
	if !ul.Interactive {
		ul.PrintToUser(msg, args...)
		return func(error) {}
	}
	us := ul.NewUserSpinner()
	sp := us.SpinToUser(msg, args...)
	return func(err error) {
		if err != nil {
			us.SpinFailWithError(sp, "", err)
		} else {
			us.SpinComplete(sp)
		}
		us.Stop()
	}
}
