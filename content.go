package contentchat

import "context"

// ContentSource turns a locator into extracted plain text. Failures are
// reported as ErrContentUnavailable or one of its sub-cases
// (ErrTranscriptsDisabled, ErrEmptyExtraction).
type ContentSource interface {
	// FetchVideo returns the subtitle text for a video ID.
	FetchVideo(ctx context.Context, videoID string) (string, error)

	// FetchWebpage returns the visible text of a webpage.
	FetchWebpage(ctx context.Context, url string) (string, error)
}
