// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI next to the background history writer and tears
// both down, together with the local storages, in a single process
// lifecycle.
package client
