package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies why a tag operation failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnsupportedFormat
	KindParse
	KindIO
	KindImageDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindParse:
		return "parse error"
	case KindIO:
		return "I/O error"
	case KindImageDecode:
		return "image decode error"
	default:
		return "unknown error"
	}
}

// TagError is returned by the codecs and the tag service.
type TagError struct {
	Kind ErrorKind
	Path string
	Op   string
	Err  error
}

func (e *TagError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, path string, op string, err error) *TagError {
	return &TagError{Kind: kind, Path: path, Op: op, Err: err}
}

// WrapError attaches a kind to err. File system errors are I/O errors,
// an existing TagError keeps its kind, everything else is a parse error.
func WrapError(path string, op string, err error) error {
	if err == nil {
		return nil
	}

	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return err
	}

	kind := KindParse
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		kind = KindIO
	}

	return NewError(kind, path, op, err)
}

// KindOf reports the kind of err, or KindUnknown when err is not a TagError.
func KindOf(err error) ErrorKind {
	var tagErr *TagError
	if errors.As(err, &tagErr) {
		return tagErr.Kind
	}
	return KindUnknown
}
