package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mikelind28/chapter-champ/internal/domain"
)

const (
	userPrefix           = "user:"
	userByEmailPrefix    = "idx:users:email:"    // For login lookups
	userByUsernamePrefix = "idx:users:username:" // For uniqueness checks and display lookups
)

var (
	// ErrUserNotFound is returned when a user cannot be found by ID, email or username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when attempting to create a user with an existing ID.
	ErrUserExists = errors.New("user already exists")
	// ErrEmailExists is returned when attempting to create a user with an email that's already in use.
	ErrEmailExists = errors.New("email already in use")
	// ErrUsernameExists is returned when attempting to create a user with a username that's already taken.
	ErrUsernameExists = errors.New("username already taken")
)

// CreateUser creates a new user account.
// Email and username uniqueness is enforced inside a single transaction, so
// two concurrent registrations for the same identity cannot both succeed.
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	key := []byte(userPrefix + user.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	emailKey := []byte(userByEmailPrefix + normalizeIdent(user.Email))
	usernameKey := []byte(userByUsernamePrefix + normalizeIdent(user.Username))

	return s.update(func(txn *badger.Txn) error {
		// Check if email is already in use.
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check email exists: %w", err)
		}

		// Check if username is already taken.
		_, err = txn.Get(usernameKey)
		if err == nil {
			return ErrUsernameExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check username exists: %w", err)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		if err := txn.Set(emailKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(usernameKey, []byte(user.ID))
	})
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	key := []byte(userPrefix + id)

	var user domain.User
	if err := s.get(key, &user); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUserByIndex(ctx, userByEmailPrefix, email)
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUserByIndex(ctx, userByUsernamePrefix, username)
}

func (s *Store) getUserByIndex(ctx context.Context, prefix, value string) (*domain.User, error) {
	indexKey := []byte(prefix + normalizeIdent(value))

	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user by index: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// UpdateUser updates an existing user, maintaining the email and username
// indexes if either changed.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	key := []byte(userPrefix + user.ID)

	oldUser, err := s.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}

	user.Touch()

	return s.update(func(txn *badger.Txn) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		if normalizeIdent(oldUser.Email) != normalizeIdent(user.Email) {
			if err := s.moveIndex(txn, userByEmailPrefix, oldUser.Email, user.Email, user.ID, ErrEmailExists); err != nil {
				return err
			}
		}

		if normalizeIdent(oldUser.Username) != normalizeIdent(user.Username) {
			if err := s.moveIndex(txn, userByUsernamePrefix, oldUser.Username, user.Username, user.ID, ErrUsernameExists); err != nil {
				return err
			}
		}

		return nil
	})
}

// moveIndex deletes the old index entry and writes the new one, failing with
// takenErr if the new value is already claimed.
func (s *Store) moveIndex(txn *badger.Txn, prefix, oldValue, newValue, userID string, takenErr error) error {
	oldKey := []byte(prefix + normalizeIdent(oldValue))
	if err := txn.Delete(oldKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	newKey := []byte(prefix + normalizeIdent(newValue))
	_, err := txn.Get(newKey)
	if err == nil {
		return takenErr
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("check index value: %w", err)
	}

	return txn.Set(newKey, []byte(userID))
}

// ListUsers returns all users (for admin view).
func (s *Store) ListUsers(_ context.Context) ([]*domain.User, error) {
	prefix := []byte(userPrefix)
	var users []*domain.User

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var user domain.User
				if unmarshalErr := json.Unmarshal(val, &user); unmarshalErr != nil {
					// Skip malformed users
					return nil //nolint:nilerr // intentionally skip malformed entries
				}

				users = append(users, &user)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// DeleteUser removes a user, its lookup indexes, and its saved books.
// Record, indexes and library entries are deleted in one transaction, so a
// crash mid-delete cannot leave orphaned library keys behind.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	var bookCount int
	err = s.update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(userPrefix + id)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(userByEmailPrefix + normalizeIdent(user.Email))); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Delete([]byte(userByUsernamePrefix + normalizeIdent(user.Username))); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		// Cascade: collect the user's library keys inside this transaction
		// and delete them with the record.
		prefix := userLibraryPrefix(id)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // We only need keys.
		opts.Prefix = prefix

		var libKeys [][]byte
		it := txn.NewIterator(opts)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			libKeys = append(libKeys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range libKeys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		bookCount = len(libKeys)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user deleted", "id", id, "username", user.Username, "books", bookCount)
	}
	return nil
}

// normalizeIdent normalizes an email or username for consistent lookups.
// Lowercases and trims whitespace.
func normalizeIdent(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
