// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"strings"
	"time"
)

// WithOptionalTimeout bounds [ctx] by [timeout], unless it is zero
func WithOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// GetRealFilePath expands a leading ~ to the user home dir
func GetRealFilePath(path string) string {
	if strings.HasPrefix(path, "~") {
		return UserHomePath(strings.TrimPrefix(path, "~"))
	}
	return path
}

func Map[T, U any](input []T, f func(T) U) []U {
	output := make([]U, 0, len(input))
	for _, e := range input {
		output = append(output, f(e))
	}
	return output
}

// SplitList flattens comma separated entries into a list of trimmed,
// non empty values. Env vars and .env files give lists as "a,b".
func SplitList(values []string) []string {
	result := []string{}
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				result = append(result, s)
			}
		}
	}
	return result
}
