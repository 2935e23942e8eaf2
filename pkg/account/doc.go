// Package account holds registered users and the username/password flows.
//
// Service.Register enforces the credential policy (ValidateCredentials),
// hashes the password through a password.Hasher and persists the User.
// Service.Authenticate reports unknown users and wrong passwords with the
// same ErrInvalidCredentials and runs a key derivation in both cases, so
// neither the response nor its timing reveals whether a username exists.
//
// Store has an in-memory implementation here and a PostgreSQL one in
// pgstore. Store failures surface as ErrStoreUnavailable.
//
// Service also satisfies session.UserResolver, which lets the session
// Manager turn a session's user id into a username.
package account
