// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

type State int

const (
	StateStart State = iota
	StateFactoryAcquired
	StateSubmitted
	StateConfirmed
	StateVerified
	StateReported
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateFactoryAcquired:
		return "FactoryAcquired"
	case StateSubmitted:
		return "Submitted"
	case StateConfirmed:
		return "Confirmed"
	case StateVerified:
		return "Verified"
	case StateReported:
		return "Reported"
	case StateTerminated:
		return "Terminated"
	}
	return "Unknown"
}
