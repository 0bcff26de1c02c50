package core

import (
	"errors"
)

var (
	ErrUserExists    = errors.New("user with this username already exists")
	ErrAccountExists = errors.New("bank account with this bank id and account number already exists")
)
