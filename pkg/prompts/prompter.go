// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

//go:generate mockgen -source=prompter.go -destination=../../internal/mocks/prompter.go -package=mocks Prompter

type Prompter interface {
	CapturePassword(promptStr string) (string, error)
	CaptureAddress(promptStr string) (common.Address, error)
	CaptureNoYes(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
}

type realPrompter struct{}

// Global variable that can be replaced during testing
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// Global variable for Select operations that can be replaced during testing
var promptUISelectRunner = func(prompt promptui.Select) (int, string, error) {
	return prompt.Run()
}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CapturePassword(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Mask:     '*',
		Validate: validateNonEmpty,
	}
	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureAddress(promptStr string) (common.Address, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: ValidateAddress,
	}

	addressStr, err := promptUIRunner(prompt)
	if err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(addressStr), nil
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{No, Yes})
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}
