package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/voidbay/paygate/internal/paymentverify"
)

var _ paymentverify.TransactionFetcher = (*Client)(nil)

// transactionResponse is the lookup endpoint's success body.
type transactionResponse struct {
	Sender         string  `json:"sender"`
	Receiver       string  `json:"receiver"`
	AmountSOL      float64 `json:"amountSol"`
	Fee            float64 `json:"fee"`
	BlockTime      *int64  `json:"blockTime"`
	IsSelfTransfer bool    `json:"isSelfTransfer"`
}

// errorResponse is the shape backend failures use across endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// FetchTransaction looks up a confirmed transaction by signature. One request
// per call; failures map onto the paymentverify sentinel errors.
func (c *Client) FetchTransaction(ctx context.Context, signature string) (paymentverify.TransactionRecord, error) {
	endpoint := fmt.Sprintf("%s/api/solana/transaction/%s", c.baseURL, url.PathEscape(signature))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return paymentverify.TransactionRecord{}, fmt.Errorf("%w: %v", paymentverify.ErrTransportFailure, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return paymentverify.TransactionRecord{}, fmt.Errorf("%w: %v", paymentverify.ErrTransportFailure, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var body errorResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
			return paymentverify.TransactionRecord{}, &paymentverify.RejectionError{Message: body.Error}
		}
		return paymentverify.TransactionRecord{}, fmt.Errorf("%w: status %d", paymentverify.ErrServerRejected, res.StatusCode)
	}

	var body transactionResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return paymentverify.TransactionRecord{}, fmt.Errorf("%w: %v", paymentverify.ErrMalformedRecord, err)
	}

	record := paymentverify.TransactionRecord{
		Sender:       body.Sender,
		Receiver:     body.Receiver,
		AmountSOL:    body.AmountSOL,
		Fee:          body.Fee,
		SelfTransfer: body.IsSelfTransfer,
	}
	if body.BlockTime != nil {
		t := time.Unix(*body.BlockTime, 0).UTC()
		record.BlockTime = &t
	}

	return record, nil
}
