package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/voidbay/paygate/internal/downloadsession"
)

var _ downloadsession.Dispatcher = (*Client)(nil)

// dispatchRequest is the dispatch endpoint's request body.
type dispatchRequest struct {
	TorrentID string `json:"torrentId"`
	Title     string `json:"title"`
	Platform  string `json:"platform,omitempty"`
}

// dispatchResponse is the dispatch endpoint's answer. The endpoint reports
// rejection through success=false rather than through the HTTP status, so the
// body is decoded regardless of status code.
type dispatchResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
}

// InitiateDownload asks the backend to prepare the item's artifact.
func (c *Client) InitiateDownload(ctx context.Context, dispatch downloadsession.DispatchRequest) (downloadsession.DispatchResult, error) {
	payload, err := json.Marshal(dispatchRequest{
		TorrentID: dispatch.ItemID,
		Title:     dispatch.Title,
		Platform:  dispatch.Platform.String(),
	})
	if err != nil {
		return downloadsession.DispatchResult{}, fmt.Errorf("%w: %v", downloadsession.ErrDispatchFailed, err)
	}

	endpoint := c.baseURL + "/api/download"

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return downloadsession.DispatchResult{}, fmt.Errorf("%w: %v", downloadsession.ErrDispatchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return downloadsession.DispatchResult{}, fmt.Errorf("%w: %v", downloadsession.ErrDispatchFailed, err)
	}
	defer res.Body.Close()

	var body dispatchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return downloadsession.DispatchResult{}, fmt.Errorf("%w: %v", downloadsession.ErrMalformedDispatchResponse, err)
	}

	return downloadsession.DispatchResult{
		Accepted: body.Success,
		FileName: body.FileName,
	}, nil
}

// ArtifactURL returns the stream URL for a prepared artifact.
func (c *Client) ArtifactURL(itemID string, platform downloadsession.Platform) string {
	artifact := fmt.Sprintf("%s/api/download/file/%s", c.baseURL, url.PathEscape(itemID))
	if platform != downloadsession.PlatformAny {
		artifact += "?platform=" + url.QueryEscape(platform.String())
	}
	return artifact
}
