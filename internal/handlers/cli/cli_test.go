package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/voidbay/paygate/internal/catalog"
	"github.com/voidbay/paygate/internal/downloadsession"
	"github.com/voidbay/paygate/internal/paymentverify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// verifierFake is a scripted paymentverify.Service.
type verifierFake struct {
	result    paymentverify.Result
	verifyErr error
	secret    string
	revealErr error
	copyErr   error

	verifiedWith string
	copied       bool
}

func (v *verifierFake) Verify(ctx context.Context, signature string) (paymentverify.Result, error) {
	v.verifiedWith = signature
	return v.result, v.verifyErr
}

func (v *verifierFake) Reveal() (string, error) {
	return v.secret, v.revealErr
}

func (v *verifierFake) Revealed() bool { return v.revealErr == nil }

func (v *verifierFake) CopySecret(ctx context.Context) error {
	if v.copyErr != nil {
		return v.copyErr
	}
	v.copied = true
	return nil
}

func (v *verifierFake) Copied() bool { return v.copied }

// downloadsFake is a scripted downloadsession.Service that replays a fixed
// transition sequence to watchers.
type downloadsFake struct {
	availability map[downloadsession.Platform]bool
	transitions  []downloadsession.Snapshot
	triggerErr   error

	triggered []downloadsession.Key
}

func (d *downloadsFake) Trigger(ctx context.Context, itemID, title string, platform downloadsession.Platform) error {
	if d.triggerErr != nil {
		return d.triggerErr
	}
	d.triggered = append(d.triggered, downloadsession.Key{ItemID: itemID, Platform: platform})
	return nil
}

func (d *downloadsFake) Available(platform downloadsession.Platform) bool {
	return d.availability[platform]
}

func (d *downloadsFake) Status(key downloadsession.Key) downloadsession.Snapshot {
	return downloadsession.Snapshot{Key: key}
}

func (d *downloadsFake) Watch(key downloadsession.Key) (<-chan downloadsession.Snapshot, downloadsession.CancelFunc) {
	ch := make(chan downloadsession.Snapshot, len(d.transitions))
	for _, snap := range d.transitions {
		ch <- snap
	}
	close(ch)
	return ch, func() {}
}

// catalogFake is a scripted catalog.Service.
type catalogFake struct {
	items []catalog.Item
}

func (c *catalogFake) List(ctx context.Context, filter catalog.Filter) ([]catalog.Item, error) {
	filtered := make([]catalog.Item, 0, len(c.items))
	for _, item := range c.items {
		if filter.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (c *catalogFake) Get(ctx context.Context, id string) (catalog.Item, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return catalog.Item{}, catalog.ErrItemNotFound
}

func testCatalog() *catalogFake {
	return &catalogFake{items: []catalog.Item{
		{ID: "g1", Title: "Nebula Drift", Category: catalog.CategoryGame},
		{ID: "s1", Title: "PhotoForge Studio", Category: catalog.CategorySoftware},
	}}
}

// runCommand executes one command under a root with a captured writer.
func runCommand(t *testing.T, cmd *cli.Command, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	root := &cli.Command{
		Name:     "paygate",
		Writer:   &out,
		Commands: []*cli.Command{cmd},
	}

	require.NoError(t, root.Run(t.Context(), append([]string{"paygate"}, args...)))
	return out.String()
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("registers all commands and serves help", func(t *testing.T) {
		os.Args = []string{"paygate", "--help"}

		err := Run(t.Context(), &verifierFake{}, &downloadsFake{}, testCatalog())
		assert.NoError(t, err)
	})
}

func TestVerifyPaymentCommand(t *testing.T) {
	validResult := paymentverify.Result{
		Record: paymentverify.TransactionRecord{
			Sender:    "Payer999",
			Receiver:  "GateWallet111",
			AmountSOL: 1.5,
		},
		Verdict:          paymentverify.Verdict{ReceiverValid: true, AmountValid: true, Valid: true},
		ExpectedReceiver: "GateWallet111",
		ExpectedSOL:      1,
	}

	t.Run("prints the verification outcome for a valid payment", func(t *testing.T) {
		verifier := &verifierFake{result: validResult, secret: "s3cr3t-key"}

		out := runCommand(t, verifyPaymentCommand(verifier), "verify", "--signature", "sig-1")

		assert.Equal(t, "sig-1", verifier.verifiedWith)
		assert.Contains(t, out, "Payment verified")
		assert.NotContains(t, out, "s3cr3t-key")
	})

	t.Run("reveals the key on request", func(t *testing.T) {
		verifier := &verifierFake{result: validResult, secret: "s3cr3t-key"}

		out := runCommand(t, verifyPaymentCommand(verifier), "verify", "--signature", "sig-1", "--reveal")

		assert.Contains(t, out, "Decrypt key: s3cr3t-key")
	})

	t.Run("copies the key on request", func(t *testing.T) {
		verifier := &verifierFake{result: validResult, secret: "s3cr3t-key"}

		out := runCommand(t, verifyPaymentCommand(verifier), "verify", "--signature", "sig-1", "--copy")

		assert.True(t, verifier.copied)
		assert.Contains(t, out, "Copied to clipboard")
	})

	t.Run("an invalid payment never reveals even with the flag", func(t *testing.T) {
		result := validResult
		result.Verdict = paymentverify.Verdict{ReceiverValid: true}
		verifier := &verifierFake{result: result, secret: "s3cr3t-key"}

		out := runCommand(t, verifyPaymentCommand(verifier), "verify", "--signature", "sig-1", "--reveal")

		assert.Contains(t, out, "Payment rejected")
		assert.NotContains(t, out, "s3cr3t-key")
	})

	t.Run("lookup failures print the user-facing message and exit clean", func(t *testing.T) {
		verifier := &verifierFake{verifyErr: &paymentverify.RejectionError{Message: "Transaction not found"}}

		out := runCommand(t, verifyPaymentCommand(verifier), "verify", "--signature", "sig-1")

		assert.Contains(t, out, "Transaction not found")
	})
}

func TestDownloadItemCommand(t *testing.T) {
	availability := map[downloadsession.Platform]bool{
		downloadsession.PlatformAny:     true,
		downloadsession.PlatformWindows: true,
	}

	lifecycle := func(key downloadsession.Key) []downloadsession.Snapshot {
		statuses := []downloadsession.Status{
			downloadsession.StatusInitiating,
			downloadsession.StatusDownloading,
			downloadsession.StatusComplete,
			downloadsession.StatusIdle,
		}

		snaps := make([]downloadsession.Snapshot, 0, len(statuses))
		for _, status := range statuses {
			snap := downloadsession.Snapshot{Key: key, Status: status, Label: status.Label()}
			if status == downloadsession.StatusDownloading {
				snap.FileName = "nebula-drift.torrent"
			}
			snaps = append(snaps, snap)
		}
		return snaps
	}

	t.Run("triggers and follows the session to completion", func(t *testing.T) {
		key := downloadsession.Key{ItemID: "g1", Platform: downloadsession.PlatformAny}
		downloads := &downloadsFake{availability: availability, transitions: lifecycle(key)}

		out := runCommand(t, downloadItemCommand(downloads, testCatalog()), "download", "--item", "g1")

		require.Len(t, downloads.triggered, 1)
		assert.Equal(t, key, downloads.triggered[0])

		assert.Contains(t, out, `Downloading "Nebula Drift"`)
		assert.Contains(t, out, "Initiating...")
		assert.Contains(t, out, "Saving as nebula-drift.torrent")
		assert.Contains(t, out, "Complete!")
	})

	t.Run("unavailable platforms print the coming-soon notice without triggering", func(t *testing.T) {
		downloads := &downloadsFake{availability: availability}

		out := runCommand(t, downloadItemCommand(downloads, testCatalog()), "download", "--item", "g1", "--platform", "linux")

		assert.Empty(t, downloads.triggered)
		assert.Contains(t, out, "coming soon")
	})

	t.Run("unknown items fail before any trigger", func(t *testing.T) {
		downloads := &downloadsFake{availability: availability}

		var out bytes.Buffer
		root := &cli.Command{
			Name:     "paygate",
			Writer:   &out,
			Commands: []*cli.Command{downloadItemCommand(downloads, testCatalog())},
		}

		err := root.Run(t.Context(), []string{"paygate", "download", "--item", "missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrItemNotFound)
		assert.Empty(t, downloads.triggered)
	})
}

func TestListCatalogCommand(t *testing.T) {
	t.Run("lists the full catalog as JSON", func(t *testing.T) {
		out := runCommand(t, listCatalogCommand(testCatalog()), "catalog")

		assert.Contains(t, out, `"id": "g1"`)
		assert.Contains(t, out, `"id": "s1"`)
	})

	t.Run("applies category and search filters", func(t *testing.T) {
		out := runCommand(t, listCatalogCommand(testCatalog()), "catalog", "--category", "GAMES")

		assert.Contains(t, out, `"id": "g1"`)
		assert.NotContains(t, out, `"id": "s1"`)
	})

	t.Run("post-processes the listing with a jq expression", func(t *testing.T) {
		out := runCommand(t, listCatalogCommand(testCatalog()), "catalog", "--jq", ".[].title")

		assert.Contains(t, out, `"Nebula Drift"`)
		assert.Contains(t, out, `"PhotoForge Studio"`)
		assert.NotContains(t, out, `"id"`)
	})

	t.Run("rejects an invalid jq expression", func(t *testing.T) {
		var out bytes.Buffer
		root := &cli.Command{
			Name:     "paygate",
			Writer:   &out,
			Commands: []*cli.Command{listCatalogCommand(testCatalog())},
		}

		err := root.Run(t.Context(), []string{"paygate", "catalog", "--jq", "((("})
		require.Error(t, err)
	})
}
