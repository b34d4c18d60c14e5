// Package content fetches the text behind a locator: a webpage's
// visible text or a YouTube video's subtitles.
package content

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/contentchat/contentchat"
)

const watchPageURL = "https://www.youtube.com/watch?v="

// preferredLanguages orders caption-track selection.
var preferredLanguages = []string{"de", "en"}

// Fetcher implements contentchat.ContentSource over plain HTTP.
type Fetcher struct {
	client    *http.Client
	watchBase string
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: 10 * time.Second},
		watchBase: watchPageURL,
	}
}

// FetchWebpage downloads a page and returns its visible text: scripts,
// styles and noscript blocks stripped, remaining text collapsed to
// space-separated tokens.
func (f *Fetcher) FetchWebpage(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: fetching webpage: %v", contentchat.ErrContentUnavailable, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: parsing webpage: %v", contentchat.ErrContentUnavailable, err)
	}
	doc.Find("script, style, noscript").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" {
		return "", contentchat.ErrEmptyExtraction
	}
	return text, nil
}

// FetchVideo returns the subtitle text for a video ID. The watch page
// carries the caption track list in its player JSON; the selected
// track's XML is fetched and its snippets joined.
func (f *Fetcher) FetchVideo(ctx context.Context, videoID string) (string, error) {
	page, err := f.get(ctx, f.watchBase+videoID)
	if err != nil {
		return "", fmt.Errorf("%w: fetching watch page: %v", contentchat.ErrContentUnavailable, err)
	}

	trackURL, err := captionTrackURL(page)
	if err != nil {
		return "", err
	}

	rawTrack, err := f.get(ctx, trackURL)
	if err != nil {
		return "", fmt.Errorf("%w: fetching caption track: %v", contentchat.ErrContentUnavailable, err)
	}

	text, err := joinTranscript(rawTrack)
	if err != nil {
		return "", fmt.Errorf("%w: parsing caption track: %v", contentchat.ErrContentUnavailable, err)
	}
	return text, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// captionTrackURL digs the caption track list out of the watch page's
// player JSON and picks a track by language preference, falling back to
// the first one offered. A missing captions block means the uploader
// disabled transcripts.
func captionTrackURL(page string) (string, error) {
	_, after, found := strings.Cut(page, `"captions":`)
	if !found {
		return "", contentchat.ErrTranscriptsDisabled
	}
	blob, _, _ := strings.Cut(after, `,"videoDetails"`)

	tracks := gjson.Get(blob, "playerCaptionsTracklistRenderer.captionTracks")
	if !tracks.Exists() || len(tracks.Array()) == 0 {
		return "", contentchat.ErrTranscriptsDisabled
	}

	for _, lang := range preferredLanguages {
		for _, track := range tracks.Array() {
			if track.Get("languageCode").String() == lang {
				return track.Get("baseUrl").String(), nil
			}
		}
	}
	return tracks.Array()[0].Get("baseUrl").String(), nil
}

type transcriptXML struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

func joinTranscript(raw string) (string, error) {
	var transcript transcriptXML
	if err := xml.Unmarshal([]byte(raw), &transcript); err != nil {
		return "", err
	}
	parts := make([]string, 0, len(transcript.Texts))
	for _, t := range transcript.Texts {
		if s := strings.TrimSpace(html.UnescapeString(t.Value)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}
