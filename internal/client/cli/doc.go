// Package cli provides the interactive userdesk command-line client.
//
// It wires configuration, the local credential store, the API client and the
// two state stores, then runs a REPL over a small route table:
//
//	/             redirects to /dashboard or /login
//	/login        sign-in form
//	/register     sign-up form
//	/dashboard    welcome screen for the signed-in user
//	/userlist     all users
//	/profile      the signed-in user's profile
//	/profile/edit edit name and email
//	/users/:id    any user's profile
//
// Route access depends only on whether an access token is stored; see
// resolveRoute. The REPL is started via App.Run(ctx), which blocks until the
// user exits.
package cli
