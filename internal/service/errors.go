package service

import "errors"

// Business errors returned by services. Handlers map these onto HTTP
// status codes in one place.
var (
	// ErrInvalidID means an identifier failed to parse before any
	// store lookup was attempted.
	ErrInvalidID = errors.New("invalid identifier")

	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")

	ErrUserNotFound    = errors.New("user not found")
	ErrSceneNotFound   = errors.New("scene not found")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrSuiteNotFound   = errors.New("suite not found")
	ErrInviteNotFound  = errors.New("no pending invite")

	// ErrAccessDenied is an authorization failure on an entity the
	// caller is allowed to know exists; it is never folded into a
	// not-found.
	ErrAccessDenied = errors.New("access denied")

	ErrAlreadyCollaborator = errors.New("user is already a collaborator")

	ErrInvalidArtworkType = errors.New("invalid artwork type")
	ErrInvalidFileType    = errors.New("invalid file type for artwork type")
	ErrInvalidMessageType = errors.New("invalid message type")

	ErrInternalServer = errors.New("internal server error")
)
