// Package auth authenticates inbound credentials against pluggable backends.
//
// The package provides credential extraction from Authorization headers, the
// contract every backend implements and an ordered chain that tries enabled
// backends until one accepts:
//   - BasicAuthenticator verifies credentials against the stored access
//     tokens with Argon2id hash comparison
//   - LdapAuthenticator verifies credentials against an LDAP directory and
//     maps directory identities onto access tokens
//
// # Credential Extraction
//
// ExtractCredentials parses "Basic" and "xBasic" Authorization values. Both
// carry the same base64 name:secret payload; the xBasic alias exists so
// non-interactive clients can authenticate without triggering the browser's
// native login prompt. The secret may contain colons, only the first colon
// separates it from the name.
//
// # LDAP Pipeline
//
// LdapAuthenticator runs a fixed sequence against the directory: bind as the
// configured search user, search for exactly one entry whose naming
// attribute equals the presented name, bind as that entry with the presented
// secret (the actual password check), search again with the operator's
// additional user filter, and finally require the entry's naming attribute
// to equal the presented name exactly. Any stage failure aborts the attempt.
// On success the matching access token is looked up, or created with the
// configured token type when absent.
//
// All directory coordinates are read from the live ldap settings domain at
// the start of each attempt, so configuration edits apply to the next call
// without a restart.
//
// # Errors
//
// Failures are typed (*Error) and classified as unauthorized, bad request,
// not found or internal; KindOf recovers the classification and HTTPStatus
// maps it for the transport layer. Directory faults never propagate raw:
// they are reported to the failure tracker and translated at the call
// boundary.
//
// Example usage:
//
//	chain := auth.NewFacade(
//	    auth.NewBasicAuthenticator(tokens),
//	    auth.NewLdapAuthenticator(ldapRef, tokens, failures),
//	)
//
//	entry, err := chain.AuthenticateByHeader(header)
//	if err != nil {
//	    status := auth.KindOf(err).HTTPStatus()
//	    // challenge with the realms of the enabled backends
//	}
package auth
