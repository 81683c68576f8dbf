package view

import (
	"errors"
	"fmt"
)

// Kind classifies a BuildError.
type Kind int

const (
	ReadFailed    Kind = iota + 1 // A required file could not be read
	NotUTF8                       // A required file is not valid UTF-8 text
	DirUnreadable                 // The content folder could not be listed
)

func (k Kind) String() string {
	switch k {
	case ReadFailed:
		return "read failed"
	case NotUTF8:
		return "not valid UTF-8"
	case DirUnreadable:
		return "directory unreadable"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors matching each Kind with errors.Is.
var (
	ErrReadFailed    = errors.New(ReadFailed.String())
	ErrNotUTF8       = errors.New(NotUTF8.String())
	ErrDirUnreadable = errors.New(DirUnreadable.String())
)

// BuildError reports why compilation failed and which file caused it.
type BuildError struct {
	Kind Kind
	Path string
	Err  error // Underlying error, may be nil
}

func (e *BuildError) Error() string {
	s := fmt.Sprintf("build %s: %s", e.Path, e.Kind)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *BuildError) Is(target error) bool {
	switch target {
	case ErrReadFailed:
		return e.Kind == ReadFailed
	case ErrNotUTF8:
		return e.Kind == NotUTF8
	case ErrDirUnreadable:
		return e.Kind == DirUnreadable
	}
	return false
}
