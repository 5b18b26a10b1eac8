/*
Package authflow drives the TradeSync authentication state machine.

The dashboard session is always in one of three states, derived on demand
from the two credential slots in the token store:

  - Anonymous: neither credential present
  - PendingSecondFactor: a challenge token from a password login that still
    needs a TOTP code
  - Authenticated: a full session token present

The Controller owns every transition: it submits credentials and codes
through the dashsdk client, persists the resulting tokens before reporting
the new state, and funnels every rejected session credential (HTTP 401,
from any call anywhere in the application) through one forced drop to
Anonymous so an expired token can never leave the UI looking signed in.
*/
package authflow
