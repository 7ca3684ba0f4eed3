// Package token decodes the bearer credentials issued by the Dungeon Keeper
// backend into the claim set the client needs: subject, account identifier and
// expiration.
//
// Decoding does not verify the signature. The client never holds the signing
// key; it only reads the payload to derive an identity and to discard
// credentials that have already expired. The backend remains the authority on
// whether a credential is valid.
//
// Decode is pure: it performs no I/O, logs nothing and never retries. Callers
// match failures with errors.As against *DecodeError.
package token
