// Package ratelimiter implements a token bucket rate limiter with an
// in-memory store and HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.PerMinute(60))
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, nil))
package ratelimiter
