// Package backend implements the HTTP adapters for the release backend: the
// Solana transaction lookup used by payment verification and the download
// dispatch endpoint used by download sessions.
package backend

import (
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/voidbay/paygate/internal/pkg/transport/resthttp"
)

// Client talks to the release backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...resthttp.Option) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: resthttp.NewClient(opts...),
	}
}
