// Package redisstore stores sessions in Redis.
//
// SessionStore keeps one key per session, "<prefix><token>", holding the user
// id and expiring with the session. Tokens are only ever used as keys, never
// spliced into commands.
package redisstore
