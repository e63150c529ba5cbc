package portal

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies portal errors the export workflow reacts to.
type Kind int

const (
	// KindUnknown is any error the workflow does not special-case.
	KindUnknown Kind = iota
	// KindAlreadyInFolder means a move found the item already in the target folder.
	KindAlreadyInFolder
	// KindNotFound means the addressed item, folder or job does not exist.
	KindNotFound
)

// messageCodeAlreadyInFolder is what the portal reports when moving an item
// into the folder that already holds it.
const messageCodeAlreadyInFolder = "CONT_0011"

// Sentinels matched with errors.Is against *Error.
var (
	ErrAlreadyInFolder = fmt.Errorf("item is already in the target folder")
	ErrNotFound        = fmt.Errorf("portal resource not found")
)

// Error is an error object returned inside a 200 response body.
type Error struct {
	Code        int      `json:"code"`
	MessageCode string   `json:"messageCode"`
	Message     string   `json:"message"`
	Details     []string `json:"details"`
}

// Kind derives the structured kind of the error.
func (e *Error) Kind() Kind {
	switch {
	case e.MessageCode == messageCodeAlreadyInFolder:
		return KindAlreadyInFolder
	case e.Code == 404:
		return KindNotFound
	default:
		return KindUnknown
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "portal error %d", e.Code)
	if e.MessageCode != "" {
		fmt.Fprintf(&b, " (%s)", e.MessageCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Details, "; "))
	}
	return b.String()
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAlreadyInFolder:
		return e.Kind() == KindAlreadyInFolder
	case ErrNotFound:
		return e.Kind() == KindNotFound
	default:
		return false
	}
}

// KindOf returns the kind of a portal error anywhere in err's chain.
func KindOf(err error) Kind {
	var perr *Error
	if stderrors.As(err, &perr) {
		return perr.Kind()
	}
	return KindUnknown
}
