package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalImageKey(t *testing.T) {
	key := JournalImageKey(7, "beach day.jpg")

	assert.True(t, strings.HasPrefix(key, "journal-images/7/"))
	assert.True(t, strings.HasSuffix(key, "-beach_day.jpg"))

	other := JournalImageKey(7, "beach day.jpg")
	assert.NotEqual(t, key, other, "keys must not collide across uploads")
}

func TestJournalImageKeyStripsPath(t *testing.T) {
	key := JournalImageKey(7, "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "journal-images/7/"))
	assert.NotContains(t, key, "..")
}

func TestPublicURL(t *testing.T) {
	svc := &StorageService{PublicBase: "https://cdn.example.com/"}
	assert.Equal(t, "https://cdn.example.com/journal-images/1/x.jpg",
		svc.PublicURL("journal-images/1/x.jpg"))

	svc = &StorageService{BaseEndpoint: "https://s3.example.com", Bucket: "capsule"}
	assert.Equal(t, "https://s3.example.com/capsule/journal-images/1/x.jpg",
		svc.PublicURL("journal-images/1/x.jpg"))
}
