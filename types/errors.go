// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorCode identifies a kind of type error. Codes are printed as stable ERROR_* names.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota
	ErrMissingMain
	ErrIncorrectArityOfMain
	ErrDuplicateFunctionDeclaration
	ErrUndefinedVariable
	ErrUndefinedTypeVariable
	ErrUnexpectedTypeForExpression
	ErrNotAFunction
	ErrNotATuple
	ErrNotARecord
	ErrNotAList
	ErrNotAReference
	ErrNotAGenericFunction
	ErrUnexpectedLambda
	ErrUnexpectedTypeForParameter
	ErrUnexpectedTuple
	ErrUnexpectedRecord
	ErrUnexpectedVariant
	ErrUnexpectedList
	ErrUnexpectedInjection
	ErrUnexpectedReference
	ErrUnexpectedMemoryAddress
	ErrMissingRecordFields
	ErrUnexpectedRecordFields
	ErrUnexpectedFieldAccess
	ErrUnexpectedVariantLabel
	ErrTupleIndexOutOfBounds
	ErrUnexpectedTupleLength
	ErrAmbiguousSumType
	ErrAmbiguousVariantType
	ErrAmbiguousList
	ErrAmbiguousPatternType
	ErrAmbiguousReferenceType
	ErrAmbiguousPanicType
	ErrAmbiguousThrowType
	ErrIllegalEmptyMatching
	ErrNonexhaustiveMatchPatterns
	ErrUnexpectedPatternForType
	ErrDuplicateRecordFields
	ErrDuplicateRecordTypeFields
	ErrDuplicateVariantTypeFields
	ErrDuplicateRecordPatternFields
	ErrIncorrectNumberOfArguments
	ErrUnexpectedNumberOfParametersInLambda
	ErrUnexpectedDataForNullaryLabel
	ErrMissingDataForLabel
	ErrUnexpectedNullaryVariantPattern
	ErrUnexpectedNonNullaryVariantPattern
	ErrExceptionTypeNotDeclared
	ErrUnexpectedSubtype
	ErrOccursCheckInfiniteType
	ErrCannotSatisfyConstraint
	ErrIncorrectNumberOfTypeArguments
	ErrExtensionIsDisabled
	ErrUnknownExtension
	ErrUndefinedTypeAlias
)

var errorCodeNames = [...]string{
	ErrUnknown:                              "ERROR_UNKNOWN",
	ErrMissingMain:                          "ERROR_MISSING_MAIN",
	ErrIncorrectArityOfMain:                 "ERROR_INCORRECT_ARITY_OF_MAIN",
	ErrDuplicateFunctionDeclaration:         "ERROR_DUPLICATE_FUNCTION_DECLARATION",
	ErrUndefinedVariable:                    "ERROR_UNDEFINED_VARIABLE",
	ErrUndefinedTypeVariable:                "ERROR_UNDEFINED_TYPE_VARIABLE",
	ErrUnexpectedTypeForExpression:          "ERROR_UNEXPECTED_TYPE_FOR_EXPRESSION",
	ErrNotAFunction:                         "ERROR_NOT_A_FUNCTION",
	ErrNotATuple:                            "ERROR_NOT_A_TUPLE",
	ErrNotARecord:                           "ERROR_NOT_A_RECORD",
	ErrNotAList:                             "ERROR_NOT_A_LIST",
	ErrNotAReference:                        "ERROR_NOT_A_REFERENCE",
	ErrNotAGenericFunction:                  "ERROR_NOT_A_GENERIC_FUNCTION",
	ErrUnexpectedLambda:                     "ERROR_UNEXPECTED_LAMBDA",
	ErrUnexpectedTypeForParameter:           "ERROR_UNEXPECTED_TYPE_FOR_PARAMETER",
	ErrUnexpectedTuple:                      "ERROR_UNEXPECTED_TUPLE",
	ErrUnexpectedRecord:                     "ERROR_UNEXPECTED_RECORD",
	ErrUnexpectedVariant:                    "ERROR_UNEXPECTED_VARIANT",
	ErrUnexpectedList:                       "ERROR_UNEXPECTED_LIST",
	ErrUnexpectedInjection:                  "ERROR_UNEXPECTED_INJECTION",
	ErrUnexpectedReference:                  "ERROR_UNEXPECTED_REFERENCE",
	ErrUnexpectedMemoryAddress:              "ERROR_UNEXPECTED_MEMORY_ADDRESS",
	ErrMissingRecordFields:                  "ERROR_MISSING_RECORD_FIELDS",
	ErrUnexpectedRecordFields:               "ERROR_UNEXPECTED_RECORD_FIELDS",
	ErrUnexpectedFieldAccess:                "ERROR_UNEXPECTED_FIELD_ACCESS",
	ErrUnexpectedVariantLabel:               "ERROR_UNEXPECTED_VARIANT_LABEL",
	ErrTupleIndexOutOfBounds:                "ERROR_TUPLE_INDEX_OUT_OF_BOUNDS",
	ErrUnexpectedTupleLength:                "ERROR_UNEXPECTED_TUPLE_LENGTH",
	ErrAmbiguousSumType:                     "ERROR_AMBIGUOUS_SUM_TYPE",
	ErrAmbiguousVariantType:                 "ERROR_AMBIGUOUS_VARIANT_TYPE",
	ErrAmbiguousList:                        "ERROR_AMBIGUOUS_LIST",
	ErrAmbiguousPatternType:                 "ERROR_AMBIGUOUS_PATTERN_TYPE",
	ErrAmbiguousReferenceType:               "ERROR_AMBIGUOUS_REFERENCE_TYPE",
	ErrAmbiguousPanicType:                   "ERROR_AMBIGUOUS_PANIC_TYPE",
	ErrAmbiguousThrowType:                   "ERROR_AMBIGUOUS_THROW_TYPE",
	ErrIllegalEmptyMatching:                 "ERROR_ILLEGAL_EMPTY_MATCHING",
	ErrNonexhaustiveMatchPatterns:           "ERROR_NONEXHAUSTIVE_MATCH_PATTERNS",
	ErrUnexpectedPatternForType:             "ERROR_UNEXPECTED_PATTERN_FOR_TYPE",
	ErrDuplicateRecordFields:                "ERROR_DUPLICATE_RECORD_FIELDS",
	ErrDuplicateRecordTypeFields:            "ERROR_DUPLICATE_RECORD_TYPE_FIELDS",
	ErrDuplicateVariantTypeFields:           "ERROR_DUPLICATE_VARIANT_TYPE_FIELDS",
	ErrDuplicateRecordPatternFields:         "ERROR_DUPLICATE_RECORD_PATTERN_FIELDS",
	ErrIncorrectNumberOfArguments:           "ERROR_INCORRECT_NUMBER_OF_ARGUMENTS",
	ErrUnexpectedNumberOfParametersInLambda: "ERROR_UNEXPECTED_NUMBER_OF_PARAMETERS_IN_LAMBDA",
	ErrUnexpectedDataForNullaryLabel:        "ERROR_UNEXPECTED_DATA_FOR_NULLARY_LABEL",
	ErrMissingDataForLabel:                  "ERROR_MISSING_DATA_FOR_LABEL",
	ErrUnexpectedNullaryVariantPattern:      "ERROR_UNEXPECTED_NULLARY_VARIANT_PATTERN",
	ErrUnexpectedNonNullaryVariantPattern:   "ERROR_UNEXPECTED_NON_NULLARY_VARIANT_PATTERN",
	ErrExceptionTypeNotDeclared:             "ERROR_EXCEPTION_TYPE_NOT_DECLARED",
	ErrUnexpectedSubtype:                    "ERROR_UNEXPECTED_SUBTYPE",
	ErrOccursCheckInfiniteType:              "ERROR_OCCURS_CHECK_INFINITE_TYPE",
	ErrCannotSatisfyConstraint:              "ERROR_CANNOT_SATISFY_CONSTRAINT",
	ErrIncorrectNumberOfTypeArguments:       "ERROR_INCORRECT_NUMBER_OF_TYPE_ARGUMENTS",
	ErrExtensionIsDisabled:                  "ERROR_EXTENSION_IS_DISABLED",
	ErrUnknownExtension:                     "ERROR_UNKNOWN_EXTENSION",
	ErrUndefinedTypeAlias:                   "ERROR_UNDEFINED_TYPE_ALIAS",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return "ERROR_UNKNOWN(" + strconv.Itoa(int(c)) + ")"
	}
	return errorCodeNames[c]
}

// ParseErrorCode returns the code printed as name.
func ParseErrorCode(name string) (ErrorCode, bool) {
	for c, n := range errorCodeNames {
		if n == name {
			return ErrorCode(c), true
		}
	}
	return ErrUnknown, false
}

// Position of a node in the source program. Line and column are 1-based; the zero
// position is unknown.
type Pos struct {
	Line, Column int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// TypeError is a fatal type error. Expected and Actual are set when the error
// compares two types.
type TypeError struct {
	Code     ErrorCode
	Expected Type
	Actual   Type
	// Printed form of the offending node, if any.
	Node   string
	Pos    Pos
	Detail string
}

func (e *TypeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code.String())
	if e.Pos.IsValid() {
		sb.WriteString(" at ")
		sb.WriteString(e.Pos.String())
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Expected != nil {
		sb.WriteString("\n  expected: ")
		sb.WriteString(TypeString(e.Expected))
	}
	if e.Actual != nil {
		sb.WriteString("\n  actual: ")
		sb.WriteString(TypeString(e.Actual))
	}
	if e.Node != "" {
		sb.WriteString("\n  in: ")
		sb.WriteString(e.Node)
	}
	return sb.String()
}

// Create a type error with a detail message.
func NewError(code ErrorCode, detail string) *TypeError {
	return &TypeError{Code: code, Detail: detail}
}

// Create a type error comparing two types.
func Mismatch(code ErrorCode, expected, actual Type) *TypeError {
	return &TypeError{Code: code, Expected: expected, Actual: actual}
}

// CodeOf returns the code of the first TypeError in err's chain, or ErrUnknown.
func CodeOf(err error) ErrorCode {
	var te *TypeError
	if errors.As(err, &te) {
		return te.Code
	}
	return ErrUnknown
}
