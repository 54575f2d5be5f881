// Package models defines the data model shared by the Streamix client packages.
//
// The types mirror the wire format of the three backend services:
//
//  1. Catalog service: [ContentItem], [Genre], [CastMember], [ImageSet],
//     [VideoRef] and [Season], read-only snapshots never mutated client-side.
//  2. Interaction service: [WatchlistEntry] and [HistoryEntry], owned by the
//     backend; the client only creates and updates them.
//  3. Identity service: [Session], the only state the client persists locally.
//
// All entity data is treated as an eventually-consistent snapshot. Identity of
// catalog items is the service-assigned ID; combining multiple catalog queries
// requires de-duplication by that ID (see the catalog package).
package models
