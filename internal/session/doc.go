// Package session keeps the server-side half of a login session: a mapping
// from an opaque session identifier to the id of the authenticated user.
//
// How the identifier reaches the client (cookie or otherwise) is up to the
// transport layer. Two backends are provided: [MemoryStore] for a single
// process and [RedisStore] for deployments sharing sessions between
// instances.
package session
