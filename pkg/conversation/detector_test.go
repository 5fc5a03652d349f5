package conversation

import (
	"testing"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/stretchr/testify/assert"
)

func userMsg(sender, body string) models.Message {
	return models.Message{SenderID: sender, Kind: models.MessageKindUser, Body: body}
}

func TestContainsContactDisclosure(t *testing.T) {
	t.Run("Email", func(t *testing.T) {
		messages := []models.Message{userMsg("user1", "write me at jamie.doe+dates@gmail.com")}
		assert.True(t, ContainsContactDisclosure(messages))
	})

	t.Run("Phone Number With Separators", func(t *testing.T) {
		messages := []models.Message{userMsg("user1", "call me: +1 (415) 555-0172")}
		assert.True(t, ContainsContactDisclosure(messages))
	})

	t.Run("Short Numbers Are Not Phones", func(t *testing.T) {
		messages := []models.Message{userMsg("user1", "dinner was $45.50, split it 50/50?")}
		assert.False(t, ContainsContactDisclosure(messages))
	})

	t.Run("Dates Are Not Phones", func(t *testing.T) {
		// Eight digits with separators, one short of a phone number.
		messages := []models.Message{userMsg("user1", "I'm free from 2025-06-01, you?")}
		assert.False(t, ContainsContactDisclosure(messages))
	})

	t.Run("Social Handle", func(t *testing.T) {
		messages := []models.Message{userMsg("user1", "find me on Instagram, same name")}
		assert.True(t, ContainsContactDisclosure(messages))
	})

	t.Run("Plain Chat", func(t *testing.T) {
		messages := []models.Message{
			userMsg("user1", "how was your weekend?"),
			userMsg("user2", "great, went hiking!"),
		}
		assert.False(t, ContainsContactDisclosure(messages))
	})

	t.Run("System Messages Never Count", func(t *testing.T) {
		messages := []models.Message{
			{SenderID: "system", Kind: models.MessageKindSystem, Body: "Reach support at help@wifey.app"},
		}
		assert.False(t, ContainsContactDisclosure(messages))
	})

	t.Run("Product Boilerplate Never Self-Triggers", func(t *testing.T) {
		messages := []models.Message{
			userMsg("user1", "A date credit from both of you will unlock this chat"),
		}
		assert.False(t, ContainsContactDisclosure(messages))
	})
}

func TestFirstQualifyingSender(t *testing.T) {
	t.Run("Skips The Scripted Opener", func(t *testing.T) {
		messages := []models.Message{
			userMsg("user1", ScriptedOpener),
			userMsg("user2", "hey, nice to meet you!"),
		}
		assert.Equal(t, "user2", FirstQualifyingSender(messages))
	})

	t.Run("Skips Non-User Messages", func(t *testing.T) {
		messages := []models.Message{
			{SenderID: "system", Kind: models.MessageKindSystem, Body: "You matched!"},
			userMsg("user1", "hi there"),
		}
		assert.Equal(t, "user1", FirstQualifyingSender(messages))
	})

	t.Run("No Qualifying Message", func(t *testing.T) {
		messages := []models.Message{userMsg("user1", ScriptedOpener)}
		assert.Equal(t, "", FirstQualifyingSender(messages))
	})
}
