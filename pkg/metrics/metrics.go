// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metrics

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os/user"
	"runtime"
	"strings"

	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/posthog/posthog-go"
	"github.com/spf13/cobra"
)

// telemetryToken value is set at build time using ldflags
var (
	telemetryToken    = ""
	telemetryInstance = "https://app.posthog.com"
)

// Enqueuer is the posthog client surface used to send events
type Enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// newClient can be replaced during testing
var newClient = func() (Enqueuer, error) {
	return posthog.NewWithConfig(telemetryToken, posthog.Config{Endpoint: telemetryInstance})
}

func userIsOptedIn(app *application.UFN) bool {
	return app.Conf != nil && app.Conf.GetConfigBoolValue(constants.ConfigMetricsEnabledKey)
}

func HandleTracking(cmd *cobra.Command, app *application.UFN, version string, flags map[string]string) {
	if !userIsOptedIn(app) {
		return
	}
	if !cmd.HasSubCommands() && CheckCommandIsNotCompletion(cmd) {
		TrackMetrics(cmd.CommandPath(), version, flags)
	}
}

func CheckCommandIsNotCompletion(cmd *cobra.Command) bool {
	result := strings.Fields(cmd.CommandPath())
	if len(result) >= 2 && result[1] == "completion" {
		return false
	}
	return true
}

func TrackMetrics(commandPath string, version string, flags map[string]string) {
	if telemetryToken == "" || utils.IsE2E() {
		return
	}
	client, err := newClient()
	if err != nil {
		return
	}
	defer client.Close()

	telemetryProperties := make(map[string]interface{})
	telemetryProperties["command"] = commandPath
	telemetryProperties["version"] = version
	telemetryProperties["os"] = runtime.GOOS
	for propertyKey, propertyValue := range flags {
		telemetryProperties[propertyKey] = propertyValue
	}
	_ = client.Enqueue(posthog.Capture{
		DistinctId: userID(),
		Event:      "ufn-command",
		Properties: telemetryProperties,
	})
}

func userID() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s%s", usr.Username, usr.Uid)))
	return base64.StdEncoding.EncodeToString(hash[:])
}
