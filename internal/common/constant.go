package common

// CredentialRecordKey is the metadata key under which the bearer credential
// is persisted between runs. An absent key means no session.
const CredentialRecordKey = "auth_token"

// AuthorizationHeaderName is the HTTP header
// carrying the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the credential in AuthorizationHeaderName.
const BearerScheme = "Bearer"

// RequestIDHeaderName correlates client log lines with backend requests.
const RequestIDHeaderName = "X-Request-ID"

// LoginRoute is the entry point protected views redirect to.
const LoginRoute = "login"
