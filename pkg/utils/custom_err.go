package utils

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrVectorNotReady = errors.New("vector not computed yet")
	ErrInvalidVector  = errors.New("vector contains NaN or Inf values")
	ErrInvalidLimit   = errors.New("invalid limit parameter")
	ErrDatabaseError  = errors.New("database error")
)
