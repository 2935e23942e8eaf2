// Package cookie encodes and decodes the session cookie.
//
// The wire format written by Encode is
//
//	<name>=<value>[; expires=<RFC 1123 GMT>][; HttpOnly][; SameSite=<Policy>][; Secure]; path=<Path>
//
// Every attribute flag is independently configurable through Options. Decode
// parses a request Cookie header and matches the cookie name exactly, never by
// prefix, so "sessionIDX=1" is not mistaken for "sessionID". Expire produces a
// header with an empty value dated at the Unix epoch, which makes browsers
// discard the cookie.
//
// Values are written verbatim. The session token is hex, so no escaping is
// needed; callers storing other values must keep them free of ';' and
// whitespace.
//
// Codec binds a cookie name to Options and adds net/http helpers:
//
//	codec, err := cookie.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	codec.Set(w, token, expiresAt)
//	token, ok := codec.FromRequest(r)
//	codec.Clear(w)
package cookie
