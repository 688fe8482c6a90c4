package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageToken(t *testing.T) {
	t.Run("編碼後可解碼回原檔名", func(t *testing.T) {
		body := EncodeImageToken("3f2a1c.png")
		assert.Equal(t, "[IMAGE:3f2a1c.png]", body)

		fileID, ok := DecodeImageToken(body)
		assert.True(t, ok)
		assert.Equal(t, "3f2a1c.png", fileID)
	})

	t.Run("純文字不是圖片訊息", func(t *testing.T) {
		_, ok := DecodeImageToken("hello [IMAGE:x.png] world")
		assert.False(t, ok, "token must span the whole body")

		_, ok = DecodeImageToken("hello")
		assert.False(t, ok)

		_, ok = DecodeImageToken("[IMAGE:]")
		assert.False(t, ok, "empty file id is not a valid token")
	})

	t.Run("Kind 由訊息本文推導", func(t *testing.T) {
		assert.Equal(t, MessageKindImage, ChatMessage{Message: EncodeImageToken("a.png")}.Kind())
		assert.Equal(t, MessageKindText, ChatMessage{Message: "hi"}.Kind())
		assert.Equal(t, MessageKindImage, DirectMessage{Message: EncodeImageToken("a.png")}.Kind())
	})
}

func TestConversationID(t *testing.T) {
	t.Run("對稱性", func(t *testing.T) {
		assert.Equal(t, ConversationID("alice", "bob"), ConversationID("bob", "alice"))
	})

	t.Run("大小寫不敏感", func(t *testing.T) {
		assert.Equal(t, "alice_bob", ConversationID("Bob", "ALICE"))
	})

	t.Run("修剪空白", func(t *testing.T) {
		assert.Equal(t, "alice_bob", ConversationID(" alice ", "bob"))
	})
}
