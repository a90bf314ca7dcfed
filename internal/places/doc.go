/*
Package places talks to the prompt-to-map backend.

# Overview

The places package owns the single external boundary of placemap:
one HTTP exchange per submitted query.

  - Client.Lookup: POST {baseURL}/places with {"prompt": ...}, a static
    API key header and JSON content type
  - MapResponse: pure transform from the backend payload into a MapView
    or a user-facing error message

# Error Handling

Failures split into two classes that must stay distinct:

  - Transport failures (connection errors, timeouts, non-JSON bodies)
    surface as a non-nil error from Lookup; callers render
    MsgBackendUnreachable
  - Backend-reported failures (non-2xx with a decodable payload) come back
    as a normal Exchange with OK=false; MapResponse selects the backend's
    error message or MsgBackendFailed

Success is decided purely by the transport status class (2xx), independent
of body content.

# Thread Safety

Client is safe for concurrent use; each Lookup call is an isolated request
on a shared http.Client.
*/
package places
