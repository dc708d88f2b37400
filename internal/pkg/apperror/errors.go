package apperror

import (
	"errors"
	"net/http"
	"strings"
)

type Kind string

const (
	KindHTTP         Kind = "http"
	KindNetwork      Kind = "network"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

type AppError struct {
	Kind        Kind
	Msg         string
	Code        int
	Base        error  `json:"-"`
	Description string `json:"description,omitempty"`
}

func NewNotFound() *AppError {
	return &AppError{KindNotFound, "not found", http.StatusNotFound, nil, ""}
}

func NewUnauthorized() *AppError {
	return &AppError{KindUnauthorized, "unauthorized", http.StatusUnauthorized, nil, ""}
}

// NewHTTP maps a non-2xx status into the matching kind.
func NewHTTP(code int) *AppError {
	switch code {
	case http.StatusNotFound:
		return NewNotFound()
	case http.StatusUnauthorized:
		return NewUnauthorized()
	}

	msg := strings.ToLower(http.StatusText(code))
	if msg == "" {
		msg = "unexpected status"
	}
	return &AppError{KindHTTP, msg, code, nil, ""}
}

// NewNetwork wraps a transport failure where no response was received.
func NewNetwork(err error) *AppError {
	return &AppError{KindNetwork, "network error", 0, err, ""}
}

func NewAppError(err error) *AppError {
	return &AppError{KindInternal, "internal error", http.StatusInternalServerError, err, ""}
}

func AppErrorFromError(inputError error) *AppError {
	var appErr *AppError
	if !errors.As(inputError, &appErr) {
		return NewAppError(inputError)
	}
	return appErr
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

func (err *AppError) IsInternalError() bool {
	return err.Code/100 == 5
}

func (err *AppError) Wrap(baseErr error, desc string) *AppError {
	err.Base = baseErr
	err.Description = desc
	return err
}

// ServerMessage is the human-readable message the back end sent, if any.
func (err *AppError) ServerMessage() string {
	return err.Description
}

func (err *AppError) Is(target error) bool {
	var targetAppErr *AppError
	if !errors.As(target, &targetAppErr) {
		return target == err.Base
	}
	return targetAppErr.Kind == err.Kind && targetAppErr.Code == err.Code
}

func (err *AppError) Unwrap() error {
	return err.Base
}

func (err *AppError) Error() string {
	switch {
	case err.Description != "":
		return err.Msg + ": " + err.Description
	case err.Base != nil:
		return err.Msg + ": " + err.Base.Error()
	}
	return err.Msg
}
