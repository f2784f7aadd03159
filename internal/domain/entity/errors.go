package entity

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a category of domain failure. Callers branch on
// the kind (via errors.Is against the Kind* sentinels), never on message
// text, so the boundary layer can map validation kinds to client faults
// and everything else to server faults.
type ErrorKind string

const (
	KindInvalidUserData      ErrorKind = "invalid_user_data"
	KindInvalidProductData   ErrorKind = "invalid_product_data"
	KindInvalidPrice         ErrorKind = "invalid_price"
	KindInvalidStock         ErrorKind = "invalid_stock"
	KindUserAlreadyExists    ErrorKind = "user_already_exists"
	KindProductAlreadyExists ErrorKind = "product_already_exists"
	KindUserNotFound         ErrorKind = "user_not_found"
	KindProductNotFound      ErrorKind = "product_not_found"
)

// DomainError is a failure of a business rule, tagged with its kind.
// Infrastructure failures are plain errors and are never wrapped in a
// DomainError.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is lets errors.Is match a DomainError against a kind sentinel:
//
//	errors.Is(err, &DomainError{Kind: KindInvalidStock})
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return de.Kind == e.Kind
}

// KindOf returns the kind of err when it is a DomainError, or "" otherwise.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func NewInvalidUserData(msg string) error {
	return &DomainError{Kind: KindInvalidUserData, Message: "invalid user data: " + msg}
}

func NewInvalidProductData(msg string) error {
	return &DomainError{Kind: KindInvalidProductData, Message: "invalid product data: " + msg}
}

func NewInvalidPrice(msg string) error {
	return &DomainError{Kind: KindInvalidPrice, Message: msg}
}

func NewInvalidStock(msg string) error {
	return &DomainError{Kind: KindInvalidStock, Message: msg}
}

func NewUserAlreadyExists(email string) error {
	return &DomainError{Kind: KindUserAlreadyExists, Message: fmt.Sprintf("user with email %s already exists", email)}
}

func NewProductAlreadyExists(sku string) error {
	return &DomainError{Kind: KindProductAlreadyExists, Message: fmt.Sprintf("product with SKU %s already exists", sku)}
}

func NewUserNotFound(identifier string) error {
	return &DomainError{Kind: KindUserNotFound, Message: fmt.Sprintf("user with identifier %s not found", identifier)}
}

func NewProductNotFound(identifier string) error {
	return &DomainError{Kind: KindProductNotFound, Message: fmt.Sprintf("product with identifier %s not found", identifier)}
}
