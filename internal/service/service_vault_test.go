// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/drivenpass/drivenpass/internal/crypto"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.VaultRepository[T]
// ─────────────────────────────────────────────

type mockVaultRepository[T any] struct {
	createFn   func(ctx context.Context, rec T, userID int64) (T, error)
	findAllFn  func(ctx context.Context, userID int64) ([]T, error)
	findByIDFn func(ctx context.Context, id, userID int64) (T, error)
	updateFn   func(ctx context.Context, id int64, rec T, userID int64) (T, error)
	deleteFn   func(ctx context.Context, id, userID int64) error
}

func (m *mockVaultRepository[T]) Create(ctx context.Context, rec T, userID int64) (T, error) {
	if m.createFn != nil {
		return m.createFn(ctx, rec, userID)
	}
	return rec, nil
}

func (m *mockVaultRepository[T]) FindAll(ctx context.Context, userID int64) ([]T, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVaultRepository[T]) FindByID(ctx context.Context, id, userID int64) (T, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id, userID)
	}
	var zero T
	return zero, nil
}

func (m *mockVaultRepository[T]) Update(ctx context.Context, id int64, rec T, userID int64) (T, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, rec, userID)
	}
	return rec, nil
}

func (m *mockVaultRepository[T]) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

func newTestCipher(t *testing.T) crypto.SecretCipher {
	t.Helper()
	cipher, err := crypto.NewSecretCipher("test-cipher-secret")
	require.NoError(t, err)
	return cipher
}

// ─────────────────────────────────────────────
// Notes: plain vault semantics, no sealing
// ─────────────────────────────────────────────

func TestNoteService_Create(t *testing.T) {
	var stored models.Note
	repo := &mockVaultRepository[models.Note]{
		createFn: func(ctx context.Context, rec models.Note, userID int64) (models.Note, error) {
			stored = rec
			rec.ID = 1
			rec.UserID = userID
			return rec, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	created, err := svc.Create(context.Background(), models.Note{Title: "groceries", Content: "milk"}, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), created.UserID)
	// note content is stored as-is
	assert.Equal(t, "milk", stored.Content)
}

func TestNoteService_Create_MissingFields(t *testing.T) {
	svc := NewNoteService(&mockVaultRepository[models.Note]{}, logger.Nop())

	_, err := svc.Create(context.Background(), models.Note{}, 7)

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"title", "content"}, missingErr.Fields)
}

func TestNoteService_Create_DuplicateTitle(t *testing.T) {
	repo := &mockVaultRepository[models.Note]{
		createFn: func(ctx context.Context, rec models.Note, userID int64) (models.Note, error) {
			return models.Note{}, store.ErrDuplicateTitle
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.Create(context.Background(), models.Note{Title: "groceries", Content: "milk"}, 7)

	assert.ErrorIs(t, err, store.ErrDuplicateTitle)
}

func TestNoteService_GetByID_NotFound(t *testing.T) {
	repo := &mockVaultRepository[models.Note]{
		findByIDFn: func(ctx context.Context, id, userID int64) (models.Note, error) {
			return models.Note{}, store.ErrRecordNotFound
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestNoteService_Update_Validates(t *testing.T) {
	svc := NewNoteService(&mockVaultRepository[models.Note]{}, logger.Nop())

	_, err := svc.Update(context.Background(), 1, models.Note{Title: "no content"}, 7)

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"content"}, missingErr.Fields)
}

func TestNoteService_Delete_NotFound(t *testing.T) {
	repo := &mockVaultRepository[models.Note]{
		deleteFn: func(ctx context.Context, id, userID int64) error {
			return store.ErrRecordNotFound
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	err := svc.Delete(context.Background(), 1, 7)

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ─────────────────────────────────────────────
// Credentials: password sealing and decryption
// ─────────────────────────────────────────────

func TestCredentialService_Create_SealsPassword(t *testing.T) {
	cipher := newTestCipher(t)

	var stored models.Credential
	repo := &mockVaultRepository[models.Credential]{
		createFn: func(ctx context.Context, rec models.Credential, userID int64) (models.Credential, error) {
			stored = rec
			rec.ID = 1
			return rec, nil
		},
	}
	svc := NewCredentialService(repo, cipher, logger.Nop())

	created, err := svc.Create(context.Background(), models.Credential{Title: "github", Password: "hunter2"}, 7)

	require.NoError(t, err)
	// neither the stored nor the returned record carries plaintext
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.NotEqual(t, "hunter2", created.Password)

	plaintext, err := cipher.Decrypt(stored.Password)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)
}

func TestCredentialService_Create_MissingFields(t *testing.T) {
	svc := NewCredentialService(&mockVaultRepository[models.Credential]{}, newTestCipher(t), logger.Nop())

	_, err := svc.Create(context.Background(), models.Credential{URL: "https://github.com"}, 7)

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"title", "password"}, missingErr.Fields)
}

func TestCredentialService_Decrypt(t *testing.T) {
	cipher := newTestCipher(t)
	encrypted, err := cipher.Encrypt("hunter2")
	require.NoError(t, err)

	repo := &mockVaultRepository[models.Credential]{
		findByIDFn: func(ctx context.Context, id, userID int64) (models.Credential, error) {
			return models.Credential{ID: id, Title: "github", Password: encrypted, UserID: userID}, nil
		},
	}
	svc := NewCredentialService(repo, cipher, logger.Nop())

	plaintext, err := svc.Decrypt(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)
}

func TestCredentialService_Decrypt_NotFound(t *testing.T) {
	repo := &mockVaultRepository[models.Credential]{
		findByIDFn: func(ctx context.Context, id, userID int64) (models.Credential, error) {
			return models.Credential{}, store.ErrRecordNotFound
		},
	}
	svc := NewCredentialService(repo, newTestCipher(t), logger.Nop())

	_, err := svc.Decrypt(context.Background(), 1, 99)

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestCredentialService_Decrypt_CorruptedBlob(t *testing.T) {
	repo := &mockVaultRepository[models.Credential]{
		findByIDFn: func(ctx context.Context, id, userID int64) (models.Credential, error) {
			return models.Credential{ID: id, Password: "bm90IGEgdmFsaWQgYmxvYg=="}, nil
		},
	}
	svc := NewCredentialService(repo, newTestCipher(t), logger.Nop())

	_, err := svc.Decrypt(context.Background(), 1, 7)

	assert.ErrorIs(t, err, crypto.ErrCipher)
}

// ─────────────────────────────────────────────
// Cards: type validation and double sealing
// ─────────────────────────────────────────────

func validCard() models.Card {
	return models.Card{
		Title:        "main visa",
		CardNumber:   "4111111111111111",
		CardName:     "JOHN DOE",
		SecurityCode: "123",
		Expiration:   "12/2030",
		Virtual:      false,
		CardType:     models.CardTypeCredit,
	}
}

func TestCardService_Create_SealsSensitiveFields(t *testing.T) {
	cipher := newTestCipher(t)

	var stored models.Card
	repo := &mockVaultRepository[models.Card]{
		createFn: func(ctx context.Context, rec models.Card, userID int64) (models.Card, error) {
			stored = rec
			rec.ID = 1
			return rec, nil
		},
	}
	svc := NewCardService(repo, cipher, logger.Nop())

	_, err := svc.Create(context.Background(), validCard(), 7)

	require.NoError(t, err)
	assert.NotEqual(t, "4111111111111111", stored.CardNumber)
	assert.NotEqual(t, "123", stored.SecurityCode)
	// the holder name stays in plaintext
	assert.Equal(t, "JOHN DOE", stored.CardName)

	number, err := cipher.Decrypt(stored.CardNumber)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", number)

	code, err := cipher.Decrypt(stored.SecurityCode)
	require.NoError(t, err)
	assert.Equal(t, "123", code)
}

func TestCardService_Create_InvalidCardType(t *testing.T) {
	svc := NewCardService(&mockVaultRepository[models.Card]{}, newTestCipher(t), logger.Nop())

	card := validCard()
	card.CardType = "GIFT"

	_, err := svc.Create(context.Background(), card, 7)

	assert.ErrorIs(t, err, ErrInvalidCardType)
}

func TestCardService_Create_MissingFields(t *testing.T) {
	svc := NewCardService(&mockVaultRepository[models.Card]{}, newTestCipher(t), logger.Nop())

	_, err := svc.Create(context.Background(), models.Card{Title: "main visa"}, 7)

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"cardNumber", "cardName", "securityCode", "expiration", "cardType"}, missingErr.Fields)
}

func TestCardService_Update_Validates(t *testing.T) {
	svc := NewCardService(&mockVaultRepository[models.Card]{}, newTestCipher(t), logger.Nop())

	card := validCard()
	card.CardType = "PLATINUM"

	_, err := svc.Update(context.Background(), 1, card, 7)

	assert.ErrorIs(t, err, ErrInvalidCardType)
}
