package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	txnDate := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 9, 14, 10, 30, 45, 123456789, time.UTC)

	token := EncodeToken(txnDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, txnDate, decodedDate, "Date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero time values round-trip too.
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
}

func TestEncodeDecodeKeysetToken(t *testing.T) {
	createdAt := time.Date(2025, 9, 14, 10, 30, 45, 123456789, time.UTC)
	id := "3f1c9a2e-8d4b-4f6a-9c0e-7b5d2a1f8e63"

	token := EncodeKeysetToken(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeKeysetToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, id, decodedID, "Row ID should match after decode")
}

func TestDecodeKeysetTokenError(t *testing.T) {
	// Invalid base64.
	_, _, err := DecodeKeysetToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator.
	_, _, err = DecodeKeysetToken("MjAyNS0wOS0xNFQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Empty ID part.
	emptyID := EncodeKeysetToken(time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), "")
	_, _, err = DecodeKeysetToken(emptyID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64.
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator.
	_, _, err = DecodeToken("MjAyNS0wOS0xNFQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Garbage date part.
	_, _, err = DecodeToken("bm90YWRhdGV8MjAyNS0wOS0xNFQxMDozMDo0NVo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
