// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

//go:build tools

// Package main pins test dependencies used only behind build tags.
// See https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
package main

import (
	// Integration suite (build tag "integration")
	_ "github.com/onsi/ginkgo/v2"
	_ "github.com/onsi/gomega"
)
