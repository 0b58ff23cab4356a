package mongo

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

func writeException(index string) error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: fmt.Sprintf("E11000 duplicate key error collection: bumdes.users index: %s dup key: { : \"taken\" }", index),
	}}}
}

func TestDuplicateKeyConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"username collision", writeException("username_1"), domain.ErrUsernameTaken},
		{"email collision", writeException("email_1"), domain.ErrEmailTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := duplicateKeyConflict(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
