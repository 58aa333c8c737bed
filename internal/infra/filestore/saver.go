// Package filestore persists dispatched artifacts to the local filesystem,
// standing in for the browser's native file save.
package filestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/voidbay/paygate/internal/downloadsession"
	"github.com/voidbay/paygate/internal/pkg/transport/resthttp"
)

var _ downloadsession.ArtifactSaver = (*Saver)(nil)

// Saver streams artifacts into a destination directory.
type Saver struct {
	dir        string
	httpClient *retryablehttp.Client
}

// NewSaver creates a Saver writing into dir.
func NewSaver(dir string, opts ...resthttp.Option) *Saver {
	return &Saver{
		dir:        dir,
		httpClient: resthttp.NewClient(opts...),
	}
}

// SaveArtifact fetches the artifact stream and writes it to the destination
// directory under the base of fileName. Path separators in fileName are
// stripped so the backend cannot steer the write outside the directory.
func (s *Saver) SaveArtifact(ctx context.Context, url, fileName string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building artifact request: %w", err)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching artifact: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching artifact: unexpected status %d", res.StatusCode)
	}

	path := filepath.Join(s.dir, filepath.Base(fileName))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, res.Body); err != nil {
		return fmt.Errorf("writing artifact file: %w", err)
	}

	return nil
}
