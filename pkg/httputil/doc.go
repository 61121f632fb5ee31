// Package httputil provides HTTP utilities shared by the API clients.
//
// # Retry
//
// [Retry] wraps an operation with automatic retry for transient failures.
// Only errors wrapped in [RetryableError] are retried; everything else is
// returned on the first attempt. Callers mark transport failures and
// 5xx/429 responses as retryable (see [RetryableStatus]):
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// A [Policy] stores the same settings on a client. The zero value and
// [NoRetry] perform a single attempt, which is what the Buycraft client
// uses unless configured otherwise.
package httputil
