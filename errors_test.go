package entitycache

import (
	"errors"
	"fmt"
	"testing"

	platform "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrNotFound, true},
		{"wrapped sentinel", fmt.Errorf("lookup abc: %w", ErrNotFound), true},
		{"platform not found", platform.New(platform.CodeNotFound, "no record"), true},
		{"wrapped platform not found", platform.Wrap(errors.New("miss"), platform.CodeNotFound, "no record"), true},
		{"platform network error", platform.New(platform.CodeNetwork, "conductor unreachable"), false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}
