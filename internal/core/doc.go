// Package core provides the ingestion and query pipeline of the community
// resource directory.
//
// This package holds all domain logic independent of any transport. It is
// used by the HTTP server, the dirctl CLI and tests without modification.
//
// # Pipeline
//
// Raw delimited text flows through these stages:
//
//  1. [ParseTable] splits the text into typed [Row] values, dropping rows
//     with fewer fields than the header
//  2. [NormalizeCategory], [GeoResolver] and [TrustInitializer] turn the
//     raw cells into a [Resource]
//  3. [Build] collects the resources into an immutable [Store]
//  4. [Filter] applies a [QueryState]; [ComputeBounds] and [Pins] place the
//     result on a map
//
// Randomness (map jitter, initial trust scores) and the clock are injected
// through [BuildOptions], so a fixed seed reproduces a store exactly:
//
//	store := core.Build(catalog.Raw(), core.BuildOptions{
//	    Rand: core.NewRand(42),
//	    Now:  func() time.Time { return fixed },
//	})
//	hits := core.Filter(store, core.QueryState{SearchText: "food", Category: core.CategoryAll, City: core.CityAll})
//
// # Reviews
//
// Reviews live in a [Ledger], a persistent list: adding a review returns a
// new Ledger and never changes the old one. [Score] averages a resource's
// ratings and returns [NeutralScore] when there are none.
//
// # Session State
//
// [Service] wraps a Store with the mutable parts of a session (ledger,
// saved lists, like counts) behind a mutex.
//
// # Error Handling
//
// Ingestion and queries never fail. Review attribution, rating range and
// resource lookups return sentinel errors, which [MapError] turns into
// user-facing messages:
//
//   - AUTH001: sign-in required
//   - REV001: rating out of range
//   - RES001: unknown resource
//   - EXP001: empty export
//   - AST001-AST002: assistant unavailable or failed
//   - RATE001, REQ001, ERR000: rate limit, bad request, unknown
package core
