package fetcher_test

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedline/yml-feed-parser/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent   = "test/0.0.0"
	response    = "<yml_catalog></yml_catalog>"
	contentType = "Content-Type"
)

func TestUnitValidateFeedURL(t *testing.T) {
	tests := map[string]struct {
		url          string
		wantValid    bool
		wantFileType fetcher.FileType
	}{
		"xml feed": {
			url:          "https://shop.ua/feed.xml",
			wantValid:    true,
			wantFileType: fetcher.FileTypeXML,
		},
		"csv feed": {
			url:          "http://shop.ua/export.CSV",
			wantValid:    true,
			wantFileType: fetcher.FileTypeCSV,
		},
		"unknown extension": {
			url:          "https://shop.ua/feed.json",
			wantFileType: fetcher.FileTypeUnknown,
		},
		"relative url": {
			url:          "/feed.xml",
			wantFileType: fetcher.FileTypeUnknown,
		},
		"unsupported scheme": {
			url:          "ftp://shop.ua/feed.xml",
			wantFileType: fetcher.FileTypeUnknown,
		},
		"empty": {
			url:          "",
			wantFileType: fetcher.FileTypeUnknown,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			validation := fetcher.ValidateFeedURL(tt.url)

			assert.Equal(t, tt.wantValid, validation.Valid, "should return correct validity")
			assert.Equal(t, tt.wantFileType, validation.FileType, "should return correct file type")
			if !tt.wantValid {
				assert.NotEmpty(t, validation.Message, "invalid url should carry a message")
			}
		})
	}
}

func TestUnitFetchFeed(t *testing.T) {
	wantHeaders := map[string]string{
		"User-Agent":      userAgent,
		"Accept-Encoding": "gzip",
	}

	tests := map[string]struct {
		serverHandler http.Handler
		wantBody      string
		wantErr       error
	}{
		"ok xml": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "application/xml")
				wrt.Write([]byte(response))
			}),
			wantBody: response,
		},
		"ok gzip": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "application/zip")
				compressedWrt := gzip.NewWriter(wrt)
				compressedWrt.Write([]byte(response))
				compressedWrt.Flush()
				compressedWrt.Close()
			}),
			wantBody: response,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			fet := fetcher.NewFetcher(srv.Client(), userAgent)
			resp, err := fet.FetchFeed(context.TODO(), srv.URL+"/feed.xml")

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, readAndClose(t, resp), "should return correct response")
			}
		})
	}
}

func TestUnitFetchFeedUnknownType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		t.Error("should not perform any network call")
	}))
	t.Cleanup(func() {
		srv.Close()
	})

	fet := fetcher.NewFetcher(srv.Client(), userAgent)
	resp, err := fet.FetchFeed(context.TODO(), srv.URL+"/feed.json")

	require.ErrorIs(t, err, fetcher.ErrUnknownFileType, "should fail before fetching")
	assert.Nil(t, resp)
}

func TestUnitFetchFeedRelayFallback(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(func() {
		direct.Close()
	})

	feedURL := direct.URL + "/feed.xml"

	relay := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, feedURL, req.URL.Query().Get("url"), "relay should receive the feed url")
		wrt.Header().Add(contentType, "application/json")
		json.NewEncoder(wrt).Encode(map[string]string{"contents": response})
	}))
	t.Cleanup(func() {
		relay.Close()
	})

	fet := fetcher.NewFetcher(
		direct.Client(),
		userAgent,
		fetcher.WithRelayURL(relay.URL+"/get?url="),
	)

	resp, err := fet.FetchFeed(context.TODO(), feedURL)
	require.NoError(t, err, "relay fallback should succeed")
	assert.Equal(t, response, readAndClose(t, resp), "should unwrap relay envelope")
}

func TestUnitFetchFeedBothFail(t *testing.T) {
	failing := http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.WriteHeader(http.StatusBadGateway)
	})

	direct := httptest.NewServer(failing)
	relay := httptest.NewServer(failing)
	t.Cleanup(func() {
		direct.Close()
		relay.Close()
	})

	fet := fetcher.NewFetcher(
		direct.Client(),
		userAgent,
		fetcher.WithRelayURL(relay.URL+"/get?url="),
	)

	resp, err := fet.FetchFeed(context.TODO(), direct.URL+"/feed.xml")

	require.Nil(t, resp)

	var fetchErr *fetcher.FetchError
	require.ErrorAs(t, err, &fetchErr, "should return FetchError")
	require.ErrorIs(t, err, fetcher.ErrStatusNotOK, "should keep the direct failure cause")
}

// readAndClose reads ReadCloser, closes it and returns result as string.
func readAndClose(t *testing.T, reader io.ReadCloser) string {
	t.Helper()

	if !assert.NotNil(t, reader, "reader shouldn't be nil") {
		return ""
	}

	result, err := io.ReadAll(reader)
	if !assert.NoError(t, err, "can't read reader") {
		return ""
	}

	assert.NoError(t, reader.Close(), "can't close reader")

	return string(result)
}

func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
