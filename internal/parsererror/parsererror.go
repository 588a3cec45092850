// Package parsererror defines the typed failure variants of the notification
// parsing engine. Every expected failure path returns one of these types so
// callers can distinguish "nothing to do" (most notifications legitimately
// aren't payments) from "something went wrong" without string matching.
package parsererror

import (
	"errors"
	"fmt"
)

// snippetLen bounds how much raw text an error carries. Notification text can
// contain personal data, so errors keep only enough for debugging.
const snippetLen = 60

// EmptyTextError indicates the notification carried no usable text after
// normalization. Nothing was extracted; nothing could have been.
type EmptyTextError struct{}

func (e *EmptyTextError) Error() string {
	return "notification contains no usable text"
}

// NotPaymentRelatedError indicates the keyword gate rejected the text before
// any extraction ran. Callers should treat this as a silent no-op.
type NotPaymentRelatedError struct {
	Snippet string
}

func (e *NotPaymentRelatedError) Error() string {
	if e.Snippet == "" {
		return "notification is not payment related"
	}
	return fmt.Sprintf("notification is not payment related: %q", e.Snippet)
}

// AmountNotFoundError indicates the text passed the keyword gate but no
// monetary amount could be extracted. Amount is the only mandatory field.
type AmountNotFoundError struct {
	Snippet string
}

func (e *AmountNotFoundError) Error() string {
	if e.Snippet == "" {
		return "no monetary amount found in notification text"
	}
	return fmt.Sprintf("no monetary amount found in notification text: %q", e.Snippet)
}

// MalformedInputError indicates the caller passed structurally invalid
// arguments, e.g. text that is not valid UTF-8.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed notification input: %s", e.Reason)
}

// Snippet truncates raw notification text for inclusion in an error.
func Snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen]) + "..."
}

// IsEmptyText reports whether err is an EmptyTextError.
func IsEmptyText(err error) bool {
	var target *EmptyTextError
	return errors.As(err, &target)
}

// IsNotPaymentRelated reports whether err is a NotPaymentRelatedError.
func IsNotPaymentRelated(err error) bool {
	var target *NotPaymentRelatedError
	return errors.As(err, &target)
}

// IsAmountNotFound reports whether err is an AmountNotFoundError.
func IsAmountNotFound(err error) bool {
	var target *AmountNotFoundError
	return errors.As(err, &target)
}

// IsMalformedInput reports whether err is a MalformedInputError.
func IsMalformedInput(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// IsSilent reports whether err is one of the expected "not a payment"
// outcomes that callers log at debug level rather than surface to the user.
func IsSilent(err error) bool {
	return IsEmptyText(err) || IsNotPaymentRelated(err) || IsAmountNotFound(err)
}
