package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityType_Valid(t *testing.T) {
	assert.True(t, ActivityTypeQuiz.Valid())
	assert.True(t, ActivityTypeUpload.Valid())
	assert.True(t, ActivityTypeSimulator.Valid())
	assert.False(t, ActivityType("essay").Valid())
	assert.False(t, ActivityType("").Valid())
}

func TestActivity_Quiz(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		ok       bool
		check    func(*testing.T, *QuizContent)
	}{
		{
			name: "decodes valid quiz content",
			activity: Activity{
				Type:    ActivityTypeQuiz,
				Content: `{"questions":[{"question":"O que é hierarquia visual?","options":["A","B"],"correct":1}]}`,
			},
			ok: true,
			check: func(t *testing.T, quiz *QuizContent) {
				require.Len(t, quiz.Questions, 1)
				assert.Equal(t, "O que é hierarquia visual?", quiz.Questions[0].Question)
				require.NotNil(t, quiz.Questions[0].Correct)
				assert.Equal(t, 1, *quiz.Questions[0].Correct)
			},
		},
		{
			name: "question without a marked answer",
			activity: Activity{
				Type:    ActivityTypeQuiz,
				Content: `{"questions":[{"question":"Pergunta aberta"}]}`,
			},
			ok: true,
			check: func(t *testing.T, quiz *QuizContent) {
				require.Len(t, quiz.Questions, 1)
				assert.Nil(t, quiz.Questions[0].Correct)
			},
		},
		{
			name:     "wrong activity type",
			activity: Activity{Type: ActivityTypeUpload, Content: `{"questions":[]}`},
			ok:       false,
		},
		{
			name:     "malformed content",
			activity: Activity{Type: ActivityTypeQuiz, Content: "not valid json {"},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, ok := tt.activity.Quiz()

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, quiz)
				tt.check(t, quiz)
			} else {
				assert.Nil(t, quiz)
			}
		})
	}
}

func TestActivity_Simulator(t *testing.T) {
	t.Run("decodes valid simulator content", func(t *testing.T) {
		activity := Activity{
			Type:    ActivityTypeSimulator,
			Content: `{"instructions":"Acesse kahoot.com","deliverables":["Link","Screenshot"]}`,
		}

		sim, ok := activity.Simulator()

		require.True(t, ok)
		assert.Equal(t, "Acesse kahoot.com", sim.Instructions)
		assert.Equal(t, []string{"Link", "Screenshot"}, sim.Deliverables)
	})

	t.Run("wrong activity type", func(t *testing.T) {
		activity := Activity{Type: ActivityTypeQuiz, Content: `{"instructions":"x"}`}

		sim, ok := activity.Simulator()

		assert.False(t, ok)
		assert.Nil(t, sim)
	})

	t.Run("malformed content", func(t *testing.T) {
		activity := Activity{Type: ActivityTypeSimulator, Content: "plain text instructions"}

		sim, ok := activity.Simulator()

		assert.False(t, ok)
		assert.Nil(t, sim)
	})
}
