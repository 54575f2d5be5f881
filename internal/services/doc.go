// Package services contains the HTTP clients for the three Streamix backend
// services.
//
//  1. Identity service ([AuthService]): register, verify-email, login, logout
//     and the three-step password reset flow.
//  2. Catalog service ([CatalogService]): read-only movie and TV metadata,
//     search, curated lists, genres and TMDB passthroughs.
//  3. Interaction service ([InteractionService]): watchlist membership and
//     watch-history progress records.
//
// All clients share a [Client] transport that injects the bearer token from
// the session store, rate-limits outbound requests, and treats any 401
// response as session-invalidating: the session is cleared wholesale via the
// OnUnauthorized hook regardless of which call observed the 401.
//
// Failures decode into [APIError] with the service's flattened message list.
// Callers decide whether an error is blocking (primary content, auth) or
// best-effort (cast, similar titles, watchlist existence checks).
package services
