package dirmap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, dirmap.ExitSuccess},
		{"general error", errors.New("something went wrong"), dirmap.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), dirmap.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), dirmap.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), dirmap.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--dir\""), dirmap.ExitUsageError},
		{"config", fmt.Errorf("load: %w", dirmap.ErrInvalidConfig), dirmap.ExitConfigError},
		{"not a directory", fmt.Errorf("%w: /x", dirmap.ErrNotADirectory), dirmap.ExitNotADirectory},
		{"approval denied", dirmap.ErrApprovalDenied, dirmap.ExitApprovalDenied},
		{"path not found", fmt.Errorf("%w: /x/y", dirmap.ErrPathNotFound), dirmap.ExitPathNotFound},
		{"invalid kind", fmt.Errorf("%w: <nil>", dirmap.ErrInvalidIndexKind), dirmap.ExitInvalidIndex},
		{"out of range", dirmap.ErrIndexOutOfRange, dirmap.ExitInvalidIndex},
		{"bad pattern", dirmap.ErrInvalidPattern, dirmap.ExitInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dirmap.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
