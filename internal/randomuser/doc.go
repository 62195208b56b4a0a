// Package randomuser is the transport for roster: an HTTP client for the
// randomuser.me API and the adapter that maps its JSON payload into
// directory records.
//
// One request is made per session:
//
//	GET https://randomuser.me/api/?results=12&nat=us&inc=picture,name,email,location,phone,cell,dob
//
// Connectivity failures, non-success statuses, undecodable bodies and API
// level "error" payloads are all reported as *directory.NetworkError so the
// directory controller can treat them uniformly. The client enforces a
// request timeout; there are no retries.
package randomuser
