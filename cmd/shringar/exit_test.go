package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shringar-studio/shringar/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "plain error is a user error",
			err:  errors.New("unknown flag"),
			want: exitUserError,
		},
		{
			name: "not found is a user error",
			err:  fmt.Errorf("service %q: %w", "zzz", types.ErrNotFound),
			want: exitUserError,
		},
		{
			name: "environment failure",
			err:  sysError{errors.New("open store: disk unreachable")},
			want: exitSysError,
		},
		{
			name: "wrapped environment failure",
			err:  fmt.Errorf("init: %w", sysError{errors.New("mkdir: permission denied")}),
			want: exitSysError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestSysErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := sysError{fmt.Errorf("open store: %w", inner)}
	assert.ErrorIs(t, err, inner)
}
