package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest runs doFunc inside an external segment for req
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	var segment *newrelic.ExternalSegment
	if txn := FromContext(ctx); txn != nil {
		segment = newrelic.StartExternalSegment(txn, req)
		defer segment.End()
	}

	resp, err := doFunc()
	if segment != nil && resp != nil {
		segment.Response = resp
	}

	return resp, err
}

// WithExternalSegment records a non-HTTP external call (for example the
// generative model SDK) under the current transaction
func WithExternalSegment(ctx context.Context, library, operation, url string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		URL:       url,
		Procedure: operation,
		Library:   library,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
