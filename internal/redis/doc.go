// Package redis holds the Redis-backed session table. Each logged-in browser
// session is one key with a TTL; expiry is the session's fixed lifetime.
package redis
