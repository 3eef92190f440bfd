// Package services holds the client-side state stores.
//
// SessionStore owns the signed-in user and the persisted token pair.
// DirectoryStore owns the user roster and the selected user. Both are created
// once by the application and passed explicitly to the presentation layer.
// Every network operation follows the same shape: raise its in-flight flag,
// call the API, apply the smallest state change, return a Result or an
// *OperationError, lower the flag.
package services
