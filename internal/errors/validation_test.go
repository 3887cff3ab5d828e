package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	testCases := []struct {
		name     string
		build    func(vb *errors.ValidationBuilder)
		expected string
		fields   map[string][]string
	}{
		{
			name:  "no errors builds nil",
			build: func(*errors.ValidationBuilder) {},
		},
		{
			name: "required fields in sorted order",
			build: func(vb *errors.ValidationBuilder) {
				vb.RequiredField("Fs").RequiredField("Dir")
			},
			expected: "validation failed: Dir: is required; Fs: is required",
			fields:   map[string][]string{"Dir": {"is required"}, "Fs": {"is required"}},
		},
		{
			name: "formatted message",
			build: func(vb *errors.ValidationBuilder) {
				vb.Fieldf("Debounce", "must be at least %dms", 10)
			},
			expected: "validation failed: Debounce: must be at least 10ms",
			fields:   map[string][]string{"Debounce": {"must be at least 10ms"}},
		},
		{
			name: "messages on one field are joined",
			build: func(vb *errors.ValidationBuilder) {
				vb.RequiredField("Roster").Field("Roster", "must be a yaml file")
			},
			expected: "validation failed: Roster: is required, must be a yaml file",
			fields:   map[string][]string{"Roster": {"is required", "must be a yaml file"}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.build(vb)
			err := vb.Build()

			if tc.expected == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.expected)
			s.Equal(tc.fields, errors.GetMeta(err)["validation_errors"])
		})
	}
}

func (s *ValidationTestSuite) TestValidationErrorWithoutFields() {
	ve := &errors.ValidationError{}
	s.Equal("validation failed", ve.Error())
}

func (s *ValidationTestSuite) TestWrappedValidationKeepsCode() {
	err := errors.NewValidationBuilder().RequiredField("OnChange").Build()
	wrapped := errors.Wrap(err, "invalid watcher config")

	s.True(errors.IsInvalidArgument(wrapped))
	s.Contains(wrapped.Error(), "OnChange: is required")
}
