package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError through errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

type ConfigKind string

const (
	ConfigDuplicateQuestion ConfigKind = "duplicate_question"
	ConfigEmptyQuestion     ConfigKind = "empty_question"
	ConfigMangledQuestion   ConfigKind = "mangled_question"
	ConfigEmptyAnswer       ConfigKind = "empty_answer"
	ConfigEmptyResponse     ConfigKind = "empty_response"
	ConfigInvalidValue      ConfigKind = "invalid_value"
)

// ConfigurationError is raised while building the responder, never per turn.
type ConfigurationError struct {
	Kind   ConfigKind
	Detail string
}

func NewConfigError(kind ConfigKind, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Kind, e.Detail)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func IsConfigKind(err error, kind ConfigKind) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce) && ce.Kind == kind
}
