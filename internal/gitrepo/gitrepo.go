package gitrepo

import (
	"fmt"
	"strings"
)

// CredentialPromptMarker appears in git's stderr when it stopped to ask for a username.
// With prompting disabled git still prints it ("could not read Username for ...").
const CredentialPromptMarker = "Username for"

// Reference is a remote repository URL as read from the repository list.
type Reference string

func (r Reference) String() string {
	return string(r)
}

// Outcome of a single clone job. A nil Err means success.
type Outcome struct {
	Reference   Reference
	Destination string
	Err         error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type CloneError struct {
	Reference    Reference
	ExitCode     int
	Stderr       string
	AuthRequired bool
	Err          error
}

func (e *CloneError) Error() string {
	if e.AuthRequired {
		return fmt.Sprintf("clone of %s requires credentials", e.Reference)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("clone of %s failed with status %d: %s", e.Reference, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("clone of %s failed with status %d", e.Reference, e.ExitCode)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Classify turns the exit status and error text of a clone into a *CloneError, or nil on success.
// The credential prompt marker makes a clone a failure even when the exit status is zero.
func Classify(reference Reference, exitCode int, stderr string, cause error) error {
	authRequired := strings.Contains(stderr, CredentialPromptMarker)
	if exitCode == 0 && !authRequired {
		return nil
	}
	return &CloneError{
		Reference:    reference,
		ExitCode:     exitCode,
		Stderr:       stderr,
		AuthRequired: authRequired,
		Err:          cause,
	}
}
