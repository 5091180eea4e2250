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

package diagnostics

// Code is a stable diagnostic identifier in the VF4xxx range.
type Code string

// Type checker diagnostic codes
const (
	// Unification failures
	ErrCannotUnify                  Code = "VF4001"
	ErrIncompatibleTypes            Code = "VF4002"
	ErrInfiniteType                 Code = "VF4003"
	ErrFunctionArityMismatch        Code = "VF4004"
	ErrTypeApplicationArityMismatch Code = "VF4005"
	ErrTupleArityMismatch           Code = "VF4006"
	ErrUnionArityMismatch           Code = "VF4007"
	ErrVariantUnificationError      Code = "VF4008"
	ErrRecordFieldMismatch          Code = "VF4009"

	// Name resolution failures
	ErrUndefinedVariable    Code = "VF4010"
	ErrUndefinedType        Code = "VF4011"
	ErrUndefinedConstructor Code = "VF4012"
	ErrUndefinedField       Code = "VF4013"
	ErrImportNotFound       Code = "VF4014"
	ErrDuplicateDefinition  Code = "VF4015"

	// Arity and shape failures
	ErrNotAFunction              Code = "VF4020"
	ErrWrongArgumentCount        Code = "VF4021"
	ErrConstructorArityMismatch  Code = "VF4022"
	ErrTypeArgumentCountMismatch Code = "VF4023"
	ErrRecursiveTypeAlias        Code = "VF4024"

	// Pattern and match failures
	ErrNonExhaustiveMatch       Code = "VF4030"
	ErrGuardTypeMismatch        Code = "VF4031"
	ErrDuplicateBinding         Code = "VF4032"
	ErrOrPatternBindingMismatch Code = "VF4033"
	ErrEmptyMatch               Code = "VF4034"
	ErrBranchTypeMismatch       Code = "VF4035"
	WarnUnreachablePattern      Code = "VF4036"

	// Record and field failures
	ErrNotARecord     Code = "VF4040"
	ErrDuplicateField Code = "VF4041"

	// Operators and references
	ErrNonNumericOperand     Code = "VF4045"
	ErrNonComparableOperand  Code = "VF4046"
	ErrNotARef               Code = "VF4047"
	ErrRefAssignmentMismatch Code = "VF4048"

	// FFI and overload failures
	ErrFFIInconsistentName     Code = "VF4050"
	ErrFFIOverloadNotFunction  Code = "VF4051"
	ErrFFIOverloadArityClash   Code = "VF4052"
	ErrNoMatchingOverload      Code = "VF4053"
	ErrAmbiguousOverload       Code = "VF4054"
	ErrFFIOverloadNotSupported Code = "VF4055"

	// Polymorphism failures
	ErrValueRestriction Code = "VF4060"

	ErrInternal Code = "VF4999"
)

var codeNames = map[Code]string{
	ErrCannotUnify:                  "CannotUnify",
	ErrIncompatibleTypes:            "IncompatibleTypes",
	ErrInfiniteType:                 "InfiniteType",
	ErrFunctionArityMismatch:        "FunctionArityMismatch",
	ErrTypeApplicationArityMismatch: "TypeApplicationArityMismatch",
	ErrTupleArityMismatch:           "TupleArityMismatch",
	ErrUnionArityMismatch:           "UnionArityMismatch",
	ErrVariantUnificationError:      "VariantUnificationError",
	ErrRecordFieldMismatch:          "RecordFieldMismatch",
	ErrUndefinedVariable:            "UndefinedVariable",
	ErrUndefinedType:                "UndefinedType",
	ErrUndefinedConstructor:         "UndefinedConstructor",
	ErrUndefinedField:               "UndefinedField",
	ErrImportNotFound:               "ImportNotFound",
	ErrDuplicateDefinition:          "DuplicateDefinition",
	ErrNotAFunction:                 "NotAFunction",
	ErrWrongArgumentCount:           "WrongArgumentCount",
	ErrConstructorArityMismatch:     "ConstructorArityMismatch",
	ErrTypeArgumentCountMismatch:    "TypeArgumentCountMismatch",
	ErrRecursiveTypeAlias:           "RecursiveTypeAlias",
	ErrNonExhaustiveMatch:           "NonExhaustiveMatch",
	ErrGuardTypeMismatch:            "GuardTypeMismatch",
	ErrDuplicateBinding:             "DuplicateBinding",
	ErrOrPatternBindingMismatch:     "OrPatternBindingMismatch",
	ErrEmptyMatch:                   "EmptyMatch",
	ErrBranchTypeMismatch:           "BranchTypeMismatch",
	WarnUnreachablePattern:          "UnreachablePattern",
	ErrNotARecord:                   "NotARecord",
	ErrDuplicateField:               "DuplicateField",
	ErrNonNumericOperand:            "NonNumericOperand",
	ErrNonComparableOperand:         "NonComparableOperand",
	ErrNotARef:                      "NotARef",
	ErrRefAssignmentMismatch:        "RefAssignmentMismatch",
	ErrFFIInconsistentName:          "FFIInconsistentName",
	ErrFFIOverloadNotFunction:       "FFIOverloadNotFunction",
	ErrFFIOverloadArityClash:        "FFIOverloadArityClash",
	ErrNoMatchingOverload:           "NoMatchingOverload",
	ErrAmbiguousOverload:            "AmbiguousOverload",
	ErrFFIOverloadNotSupported:      "FFIOverloadNotSupported",
	ErrValueRestriction:             "ValueRestriction",
	ErrInternal:                     "InternalError",
}

// Name returns the symbolic name of the code, e.g. "NonExhaustiveMatch".
func (c Code) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}
