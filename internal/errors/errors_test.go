package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "roster root must be a sequence",
			expected: "INVALID_ARGUMENT: roster root must be a sequence",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("read ficha.yaml: permission denied")
	wrapped := errors.Wrap(baseErr, "failed to load roster")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load roster", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Contains(wrapped.Error(), "permission denied")
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("catalog file missing").WithMeta("category", "armas")
	wrapped := errors.Wrap(baseErr, "failed to load catalogs")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("armas", wrapped.Meta["category"])
	s.True(errors.IsNotFound(wrapped))
	s.True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("no such key")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "redis unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("wrapped: %w", context.Canceled)))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("x")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("friendly", errors.GetMessage(errors.Wrap(fmt.Errorf("raw"), "friendly")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Equal(0, errors.CodeOK.ExitCode())
	s.Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Equal(3, errors.CodeNotFound.ExitCode())
	s.Equal(1, errors.CodeInternal.ExitCode())
}
