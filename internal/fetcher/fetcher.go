package fetcher

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultRelayURL is the public CORS relay used as a fallback when the
// direct request fails. The relay wraps the origin response in a JSON
// envelope with a "contents" field.
const DefaultRelayURL = "https://api.allorigins.win/get?url="

// FileType is a feed file format recognized by URL suffix.
type FileType string

// Known feed file types.
const (
	FileTypeXML     FileType = "xml"
	FileTypeCSV     FileType = "csv"
	FileTypeUnknown FileType = "unknown"
)

// DetectFileType returns feed format by case-insensitive URL suffix.
func DetectFileType(rawURL string) FileType {
	lowered := strings.ToLower(strings.TrimSpace(rawURL))
	switch {
	case strings.HasSuffix(lowered, ".xml"):
		return FileTypeXML
	case strings.HasSuffix(lowered, ".csv"):
		return FileTypeCSV
	default:
		return FileTypeUnknown
	}
}

// Validation is the result of feed URL validation.
type Validation struct {
	Valid    bool     `json:"valid"`
	FileType FileType `json:"fileType"`
	Message  string   `json:"message,omitempty"`
}

// ValidateFeedURL checks URL well-formedness and file type. It performs no I/O.
func ValidateFeedURL(rawURL string) Validation {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return Validation{
			FileType: FileTypeUnknown,
			Message:  "feed URL is not a well-formed absolute URL",
		}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Validation{
			FileType: FileTypeUnknown,
			Message:  fmt.Sprintf("unsupported URL scheme %q", parsed.Scheme),
		}
	}

	fileType := DetectFileType(parsed.Path)
	if fileType == FileTypeUnknown {
		return Validation{
			FileType: fileType,
			Message:  ErrUnknownFileType.Error(),
		}
	}

	return Validation{Valid: true, FileType: fileType}
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher builds http requests and fetches feed files,
// falling back to a CORS relay when the direct request fails.
type Fetcher struct {
	client    *http.Client
	userAgent string
	relayURL  string
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	fet := &Fetcher{
		client:    client,
		userAgent: userAgent,
		relayURL:  DefaultRelayURL,
	}

	for _, op := range ops {
		op(fet)
	}

	return fet
}

// WithRelayURL sets custom CORS relay endpoint.
func WithRelayURL(relayURL string) Option {
	return func(f *Fetcher) {
		f.relayURL = relayURL
	}
}

// FetchFeed returns ReadCloser with feed file fetched from provided url.
// URLs with unrecognized extension fail fast before any network call.
// On direct request failure the fetch is retried once through the relay.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	if DetectFileType(feedURL) == FileTypeUnknown {
		return nil, ErrUnknownFileType
	}

	body, directErr := f.fetchDirect(ctx, feedURL)
	if directErr == nil {
		return body, nil
	}

	body, relayErr := f.fetchViaRelay(ctx, feedURL)
	if relayErr != nil {
		return nil, &FetchError{
			URL: feedURL,
			Err: fmt.Errorf("direct request failed: %w (relay fallback: %s)", directErr, relayErr),
		}
	}

	return body, nil
}

func (f *Fetcher) fetchDirect(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	resp, err := f.doRequest(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	if isGzipped(resp) {
		decompressed, err := decompressResponse(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, err
		}
		return decompressed, nil
	}

	return resp.Body, nil
}

// fetchViaRelay fetches feed through the CORS relay and unwraps
// the {contents: string} envelope.
func (f *Fetcher) fetchViaRelay(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	resp, err := f.doRequest(ctx, f.relayURL+url.QueryEscape(feedURL))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("can't decode relay envelope: %w", err)
	}

	return io.NopCloser(strings.NewReader(envelope.Contents)), nil
}

func (f *Fetcher) doRequest(ctx context.Context, requestURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/xml, text/csv, text/plain, */*")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	return resp, nil
}

func isGzipped(resp *http.Response) bool {
	return resp.Header.Get("Content-Encoding") == "gzip" ||
		resp.Header.Get("Content-Type") == "application/zip" ||
		resp.Header.Get("Content-Type") == "application/gzip"
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
