/*
Package dashsdk provides the HTTP client for the TradeSync dashboard API.

# Overview

Every outbound call to the TradeSync backend goes through a single Client.
The Client resolves the bearer credential from its injected token store (or
an explicit override for second-factor verification), attaches it as an
Authorization header, and classifies non-success responses into typed
errors so callers can distinguish a rejected credential from a rejected
request.

Create a Client with a token store and start calling:

	tokens := memory.New()
	client := dashsdk.NewClient("http://localhost:8080/api", tokens)

	resp, err := client.Login(ctx, "trader@example.com", "secret")
	if err != nil {
		// *APIError carries the HTTP status and the server's reason
	}

# Authentication

The Client never decides what a token means; it only borrows whatever is in
the session slot of its token store for the duration of a call. Driving the
login and second-factor handshake, and reacting to a rejected credential,
is the authflow package's job. The Client's only contribution is the
OnUnauthenticated hook, invoked whenever a call authorized by the stored
session credential comes back 401, so the whole application funnels
credential expiry through one place.

# Errors

A non-2xx response becomes an *APIError with the numeric status and the
server's reason. Use IsUnauthenticated to test for a rejected credential
and IsValidation for an ordinary rejected request (wrong password, wrong
code). Transport failures and malformed response bodies are returned as
wrapped errors, never swallowed. The Client makes exactly one attempt per
call; it has no retry policy.
*/
package dashsdk
