// Package errs defines the sentinel errors returned by the arff module.
//
// Errors fall into two base categories:
//
//   - ErrInvalidData: the document violates the ARFF grammar. Reading stops
//     at the offending token and the current read cannot be resumed.
//   - ErrInvalidOperation / ErrInvalidArgument: the caller misused the API
//     (wrong call order, closed instance, bad argument), independent of
//     document content.
//
// Every specific sentinel wraps its category, so errors.Is matches both the
// precise condition and the category:
//
//	_, err := r.ReadInstance()
//	if errors.Is(err, errs.ErrInvalidData) { ... } // any grammar violation
//	if errors.Is(err, errs.ErrIndexOutOfRange) { ... } // this one exactly
package errs

import (
	"errors"
	"fmt"
)

// Base categories.
var (
	// ErrInvalidData indicates a malformed ARFF document.
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidOperation indicates an API call in the wrong state or order.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidArgument indicates a bad argument passed to an API call.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Malformed-document sentinels, all wrapping ErrInvalidData.
var (
	// ErrUnterminatedQuote indicates a quoted value with no closing quote
	// before the line terminator or end of file.
	ErrUnterminatedQuote = fmt.Errorf("%w: unterminated quoted value", ErrInvalidData)

	// ErrBadEscape indicates a malformed \u escape inside a quoted value.
	// Only the exact four-digit form \u001E is recognized.
	ErrBadEscape = fmt.Errorf("%w: malformed unicode escape", ErrInvalidData)

	// ErrUnexpectedToken indicates a token that does not fit the grammar at
	// the current position.
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrInvalidData)

	// ErrMissingSection indicates a missing or out-of-place @relation,
	// @attribute or @data section.
	ErrMissingSection = fmt.Errorf("%w: missing section", ErrInvalidData)

	// ErrNoAttributes indicates that @data was reached with zero declared
	// attributes.
	ErrNoAttributes = fmt.Errorf("%w: no attributes declared before @data", ErrInvalidData)

	// ErrUnknownAttributeType indicates an attribute declaration with an
	// unrecognized type keyword.
	ErrUnknownAttributeType = fmt.Errorf("%w: unknown attribute type", ErrInvalidData)

	// ErrEndNameMismatch indicates an @end keyword whose name does not match
	// the relational attribute it closes.
	ErrEndNameMismatch = fmt.Errorf("%w: @end name mismatch", ErrInvalidData)

	// ErrBadNumber indicates a numeric slot whose text is not a valid
	// floating-point literal.
	ErrBadNumber = fmt.Errorf("%w: malformed numeric value", ErrInvalidData)

	// ErrValueNotNominal indicates a nominal slot whose text is not in the
	// attribute's declared value list.
	ErrValueNotNominal = fmt.Errorf("%w: value not in nominal set", ErrInvalidData)

	// ErrBadDate indicates a date slot whose text does not match the
	// attribute's date format.
	ErrBadDate = fmt.Errorf("%w: malformed date value", ErrInvalidData)

	// ErrIndexOutOfRange indicates a sparse instance index that is negative,
	// not an integer, or >= the attribute count.
	ErrIndexOutOfRange = fmt.Errorf("%w: sparse index out of range", ErrInvalidData)

	// ErrBadWeight indicates a malformed instance weight suffix.
	ErrBadWeight = fmt.Errorf("%w: malformed instance weight", ErrInvalidData)

	// ErrBadDateFormat indicates a date format pattern the codec cannot
	// translate.
	ErrBadDateFormat = fmt.Errorf("%w: unsupported date format pattern", ErrInvalidData)

	// ErrNestingTooDeep indicates relational nesting beyond the supported
	// depth.
	ErrNestingTooDeep = fmt.Errorf("%w: relational nesting too deep", ErrInvalidData)
)

// Usage sentinels, wrapping ErrInvalidOperation or ErrInvalidArgument.
var (
	// ErrClosed indicates an operation on a closed Reader or Writer.
	ErrClosed = fmt.Errorf("%w: instance is closed", ErrInvalidOperation)

	// ErrWrongState indicates a Writer call outside the required
	// relation -> attributes -> data order, or a Reader row read before
	// ReadHeader.
	ErrWrongState = fmt.Errorf("%w: call out of order", ErrInvalidOperation)

	// ErrHeaderAlreadyRead indicates a second ReadHeader call.
	ErrHeaderAlreadyRead = fmt.Errorf("%w: header already read", ErrInvalidOperation)

	// ErrRowMismatch indicates an instance whose length or slot types do not
	// match the declared attributes.
	ErrRowMismatch = fmt.Errorf("%w: row does not match attributes", ErrInvalidArgument)

	// ErrNegativeWeight indicates a negative instance weight on write.
	ErrNegativeWeight = fmt.Errorf("%w: negative instance weight", ErrInvalidArgument)
)
