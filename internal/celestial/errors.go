package celestial

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid celestial configuration")

	// ErrUnknownBody is returned by id-based queries for ids not in the tree.
	ErrUnknownBody = errors.New("unknown body")
)

// ConfigurationError collects every problem found while building a tree.
type ConfigurationError struct {
	Issues []string
	causes []error
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid configuration: unknown error"
	}
	if len(e.Issues) == 1 {
		return "invalid configuration: " + e.Issues[0]
	}
	return fmt.Sprintf("invalid configuration (%d issues): %s", len(e.Issues), strings.Join(e.Issues, "; "))
}

func (e *ConfigurationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ConfigurationError) Addf(format string, args ...any) {
	e.Add(fmt.Sprintf(format, args...))
}

// addErr records err as an issue and keeps it reachable through errors.Is.
func (e *ConfigurationError) addErr(prefix string, err error) {
	e.Add(prefix + ": " + err.Error())
	e.causes = append(e.causes, err)
}

func (e *ConfigurationError) HasIssues() bool {
	return len(e.Issues) > 0
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() []error {
	return e.causes
}

func unknownBody(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownBody, id)
}
