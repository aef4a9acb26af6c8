package translatable

import (
	"errors"
	"fmt"
)

// ReasonDefaultLocalesNotSet is reported when a Set is constructed without
// explicit locales while the registry holds none.
const ReasonDefaultLocalesNotSet = "defaultLocalesNotSet"

var (
	// ErrDefaultLocalesNotSet matches the configuration error returned by New
	// when no locales can be resolved.
	ErrDefaultLocalesNotSet = errors.New("translatable: default locales not set")
	// ErrUnsupportedRecord is returned by fill callbacks when the record does
	// not implement TranslationAccessor.
	ErrUnsupportedRecord = errors.New("translatable: record does not support translations")
)

// ConfigurationError reports a bootstrap problem. It is raised synchronously
// at construction and is not meant to be recovered per request.
type ConfigurationError struct {
	Reason  string
	Message string
	err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("translatable: invalid configuration (%s): %s", e.Reason, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.err
}

func defaultLocalesNotSet() error {
	return &ConfigurationError{
		Reason:  ReasonDefaultLocalesNotSet,
		Message: "There are no default locales set. Make sure you call `SetDefaultLocales` on the registry during bootstrap and pass it a list of locales.",
		err:     ErrDefaultLocalesNotSet,
	}
}
