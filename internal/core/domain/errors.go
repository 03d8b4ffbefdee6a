package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUsernameReserved   = errors.New("username is reserved")
	ErrSelfRoleChange     = errors.New("cannot change own role")
	ErrReservedAdmin      = errors.New("cannot delete the reserved admin account")
	ErrForbidden          = errors.New("access forbidden")

	ErrNewsNotFound      = errors.New("news post not found")
	ErrMessageNotFound   = errors.New("contact message not found")
	ErrComplaintNotFound = errors.New("complaint/suggestion not found")
	ErrInvalidKind       = errors.New("submission type must be queja or sugerencia")
	ErrCommentNotFound   = errors.New("comment not found")
)
