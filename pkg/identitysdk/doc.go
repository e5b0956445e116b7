// Package identitysdk provides a typed Go client for the identity service
// along with the wire types and error taxonomy shared between the server
// handlers and external callers.
//
// Basic usage:
//
//	client := identitysdk.NewClient("http://localhost:8080")
//
//	signup, err := client.SignUp(ctx, "a@b.com", "secret1")
//	if err != nil { ... }
//
//	session, err := client.SignIn(ctx, "a@b.com", "secret1")
//	if err != nil { ... }
//
//	user, err := client.GetUser(ctx, signup.User.ID, session.Token)
//
// Failures decode into *APIError carrying the HTTP status code, the stable
// message, and field-level validation details when present:
//
//	var apiErr *identitysdk.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
//		// email already registered
//	}
package identitysdk
