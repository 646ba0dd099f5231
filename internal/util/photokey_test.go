package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddressPhotoKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := AddressPhotoKey("user-1", now)
	assert.True(t, strings.HasPrefix(key, "addresses/user-1/1700000000000-"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestAddressPhotoKey_UniquePerCall(t *testing.T) {
	now := time.Now()

	// Same user, same instant: the random suffix must still differ.
	first := AddressPhotoKey("user-1", now)
	second := AddressPhotoKey("user-1", now)
	assert.NotEqual(t, first, second)
}

func TestCommentPhotoKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := CommentPhotoKey("addr-1", "user-2", now)
	assert.Equal(t, "addressComments/addr-1/user-2/1700000000000.jpg", key)
}

func TestProfilePhotoKey_Stable(t *testing.T) {
	assert.Equal(t, "users/user-3/profile.jpg", ProfilePhotoKey("user-3"))
	assert.Equal(t, ProfilePhotoKey("user-3"), ProfilePhotoKey("user-3"))
}
