// Package contentchat - errors.go
// Defines the error taxonomy shared by the session and its collaborators.

package contentchat

import (
	"errors"
	"fmt"
)

var (
	// ErrContentUnavailable covers any content fetch that failed or
	// produced nothing usable.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrTranscriptsDisabled is the sub-case of ErrContentUnavailable
	// where the video exists but exposes no caption tracks.
	ErrTranscriptsDisabled = fmt.Errorf("%w: transcripts are disabled for this video", ErrContentUnavailable)

	// ErrEmptyExtraction is the sub-case of ErrContentUnavailable where a
	// page fetched fine but yielded no textual nodes.
	ErrEmptyExtraction = fmt.Errorf("%w: no textual content extracted from webpage", ErrContentUnavailable)

	// ErrLocatorUnparseable means a URL matched a video shape but no
	// video ID could be extracted from it.
	ErrLocatorUnparseable = errors.New("could not parse video ID from URL")

	// ErrBackendUnavailable means a model listing or chat call failed,
	// including auth or key misconfiguration.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInvalidModel means the selected model is not in the catalog.
	ErrInvalidModel = errors.New("model not available")

	// ErrEmptyInput means a chat turn was blank after trimming.
	ErrEmptyInput = errors.New("empty user input")

	// ErrNoContent means summarize was called with nothing loaded.
	ErrNoContent = errors.New("no content loaded")

	// ErrInvalidChoice means an interactive selection exhausted its
	// attempt budget without a valid answer.
	ErrInvalidChoice = errors.New("invalid choice")
)
