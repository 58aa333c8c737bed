package downloadsession

import (
	"context"
	"errors"
)

// Dispatch failure classes, mapped onto session outcomes by the controller:
// a malformed response lands the session in Error alongside explicit backend
// rejections, while any other dispatch error is a transport-level failure and
// lands it in Failed.
var (
	// ErrDispatchFailed indicates the dispatch request could not be
	// completed at the transport level.
	ErrDispatchFailed = errors.New("download dispatch request failed")

	// ErrMalformedDispatchResponse indicates the dispatch service answered
	// with a body that could not be decoded.
	ErrMalformedDispatchResponse = errors.New("download dispatch response could not be decoded")
)

// DispatchRequest asks the dispatch service to prepare one downloadable
// artifact.
type DispatchRequest struct {
	ItemID   string `validate:"required"` // catalog item identifier
	Title    string `validate:"required"` // item title, echoed to the backend
	Platform Platform
}

// DispatchResult is the dispatch service's answer.
type DispatchResult struct {
	Accepted bool   // whether the backend agreed to serve the artifact
	FileName string // name the artifact should be saved under, when accepted
}

// Dispatcher initiates downloads against the dispatch service and knows how
// to address the resulting artifact stream. Implementations issue exactly one
// outbound request per InitiateDownload call, with no retries.
type Dispatcher interface {
	InitiateDownload(ctx context.Context, req DispatchRequest) (DispatchResult, error)

	// ArtifactURL returns the URL the prepared artifact is served from. The
	// controller hands this URL off and never parses the stream behind it.
	ArtifactURL(itemID string, platform Platform) string
}

// ArtifactSaver is the native file-save hand-off: it consumes the artifact
// stream and persists it. The controller invokes it exactly once per
// successful dispatch and never lets its outcome feed back into session
// state, because true OS-level completion is not observable from here.
type ArtifactSaver interface {
	SaveArtifact(ctx context.Context, url, fileName string) error
}
