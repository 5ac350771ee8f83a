package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "idx_products_name" (SQLSTATE 23505)`), true},
		{"sqlite unique", errors.New("UNIQUE constraint failed: products.name"), true},
		{"wrapped", fmt.Errorf("insert product: %w", errors.New("UNIQUE constraint failed: salespersons.phone")), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}
