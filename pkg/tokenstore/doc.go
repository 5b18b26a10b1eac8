/*
Package tokenstore persists the TradeSync client's bearer credentials.

The dashboard keeps at most two tokens: the authenticated session token and
a provisional token scoped to completing a pending second-factor challenge.
Store is the slot-addressed key/value contract over them; the memory and
sqlite subpackages provide the in-process and durable drivers, and Null is
the degraded no-op driver used when no persistence medium is available.

The store holds plain opaque strings. It enforces no relationship between
the two slots; deriving the authentication state from their presence is the
authflow package's job.
*/
package tokenstore
