package pipeline

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadataResponse(t *testing.T) {
	t.Run("plain JSON object", func(t *testing.T) {
		md, err := parseMetadataResponse(`{"incident_number":"INC-7","severity":"HIGH","has_timeline":true}`)
		require.NoError(t, err)
		assert.Equal(t, "INC-7", md.IncidentNumber)
		assert.Equal(t, "high", md.Severity, "severity is normalized")
		assert.True(t, md.HasTimeline)
	})

	t.Run("strips code fences", func(t *testing.T) {
		md, err := parseMetadataResponse("```json\n{\"title\":\"DB outage\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "DB outage", md.Title)
	})

	t.Run("cuts leading prose", func(t *testing.T) {
		md, err := parseMetadataResponse(`Here is the extracted metadata:
{"affected_service":"payments"}
Let me know if you need anything else.`)
		require.NoError(t, err)
		assert.Equal(t, "payments", md.AffectedService)
	})

	t.Run("unrecognized severity becomes empty", func(t *testing.T) {
		md, err := parseMetadataResponse(`{"severity":"really bad"}`)
		require.NoError(t, err)
		assert.Empty(t, md.Severity)
		assert.Contains(t, md.MissingRequiredFields(), "severity")
	})

	t.Run("non-JSON response errors", func(t *testing.T) {
		_, err := parseMetadataResponse("I could not analyze this document.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})
}

func TestMetadataPromptTruncatesLongDocuments(t *testing.T) {
	long := strings.Repeat("a", maxPromptChars+5000)
	prompt := metadataPrompt(long)
	assert.Less(t, len(prompt), maxPromptChars+len(metadataPromptTemplate))
	assert.Contains(t, prompt, "Do not guess")
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "héllo", truncate("héllo", 10))
	})

	t.Run("never splits a multi-byte rune", func(t *testing.T) {
		long := strings.Repeat("é", maxPromptChars) // 2 bytes per rune
		for _, limit := range []int{maxPromptChars, maxPromptChars + 1} {
			cut := truncate(long, limit)
			assert.True(t, utf8.ValidString(cut))
			assert.LessOrEqual(t, len(cut), limit)
		}
	})
}

func TestQuestionTextCoversRequiredFields(t *testing.T) {
	seen := map[string]bool{}
	for _, field := range []string{"incident_number", "title", "severity", "affected_service", "detected_at", "action_items"} {
		q := questionText(field)
		assert.NotEmpty(t, q)
		assert.False(t, seen[q], "each field gets a distinct question")
		seen[q] = true
	}
}

func TestRetryQuestionTextEchoesPreviousAnswer(t *testing.T) {
	q := retryQuestionText("severity", "catastrophic")
	assert.Contains(t, q, "catastrophic")
	assert.Contains(t, q, "low, medium, high, critical")
}
