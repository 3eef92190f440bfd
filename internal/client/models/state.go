package models

// Session is a point-in-time copy of the session store state.
type Session struct {
	User         *User
	SigningUp    bool
	LoggingIn    bool
	LoggingOut   bool
	CheckingAuth bool
}

// Directory is a point-in-time copy of the directory store state.
type Directory struct {
	Users        []User
	Selected     *User
	LoadingUsers bool
	UpdatingUser bool
	DeletingUser bool
}
