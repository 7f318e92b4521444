// Package web serves the visualizer over HTTP.
//
// Routes:
//
//	GET /                                        menu of algorithms
//	GET /algorithms/:name/steps                  recorded sequence, JSON
//	GET /algorithms/:name/steps/:index           player page with the frame inlined
//	GET /algorithms/:name/steps/:index/svg       the frame alone, image/svg+xml
//	GET /algorithms/:name/steps/:index/state     folded visual state, JSON
//	GET /metrics                                 Prometheus metrics
//
// Each algorithm is recorded once, on first request, and replayed from the
// cache afterwards. An unknown algorithm on a page route redirects to the
// menu. Adding ?play=1 to a player page makes it advance by itself.
package web
