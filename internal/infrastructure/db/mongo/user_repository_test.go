package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

func duplicateKeyErr(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}},
	}
}

func TestDuplicateKeyConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username index",
			err:  duplicateKeyErr(`E11000 duplicate key error collection: sleep_tracker.users index: username_1 dup key: { username: "alice" }`),
			want: domain.ErrUserExists,
		},
		{
			name: "email index",
			err:  duplicateKeyErr(`E11000 duplicate key error collection: sleep_tracker.users index: email_1 dup key: { email: "alice@example.com" }`),
			want: domain.ErrEmailTaken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !mongo.IsDuplicateKeyError(tc.err) {
				t.Fatalf("test error not recognised as duplicate key")
			}
			if got := duplicateKeyConflict(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
