package bot

import (
	"testing"

	tgmodels "github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

// Outgoing texts rely on characters MarkdownV2 reserves (periods, exclamation
// marks, parentheses), so every send must use the legacy Markdown mode.
func TestMessagesUseLegacyMarkdown(t *testing.T) {
	assert.Equal(t, tgmodels.ParseModeMarkdownV1, messageParseMode)
	assert.EqualValues(t, "Markdown", messageParseMode)
	assert.NotEqualValues(t, tgmodels.ParseModeMarkdown, messageParseMode)

	// The fixed texts are unescaped; under MarkdownV2 Telegram would reject
	// them with a parse-entities error.
	assert.Contains(t, welcomeMessage, "!")
	assert.Contains(t, helpMessage, ".")
	assert.Contains(t, aboutMessage, "-")
}
