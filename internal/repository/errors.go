package repository

import "errors"

var (
	ErrBagNotFound      = errors.New("bag not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
)
