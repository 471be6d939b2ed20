// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires configuration, logging, the in-memory note storage, the note
// service and the terminal screen into a single process lifecycle.
package client
