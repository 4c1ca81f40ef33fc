//go:build unit

package i18n_test

import (
	"testing"

	"drivebook/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		text i18n.Text
		lang i18n.Language
		want string
	}{
		{
			name: "active language present",
			text: i18n.NewText("Hello", "வணக்கம்"),
			lang: i18n.LangTA,
			want: "வணக்கம்",
		},
		{
			name: "falls back to english when tamil empty",
			text: i18n.NewText("Hello", ""),
			lang: i18n.LangTA,
			want: "Hello",
		},
		{
			name: "english requested",
			text: i18n.NewText("Hello", "வணக்கம்"),
			lang: i18n.LangEN,
			want: "Hello",
		},
		{
			name: "both empty resolves to empty string",
			text: i18n.Text{},
			lang: i18n.LangTA,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Resolve(tt.text, tt.lang))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, i18n.LangTA, i18n.ParseLanguage("ta"))
	assert.Equal(t, i18n.LangTA, i18n.ParseLanguage("ta-IN"))
	assert.Equal(t, i18n.LangTA, i18n.ParseLanguage("TA"))
	assert.Equal(t, i18n.LangEN, i18n.ParseLanguage("en-US"))
	assert.Equal(t, i18n.LangEN, i18n.ParseLanguage("fr"))
	assert.Equal(t, i18n.LangEN, i18n.ParseLanguage(""))
}

func TestDetermineLocale(t *testing.T) {
	t.Run("query param wins over header", func(t *testing.T) {
		assert.Equal(t, i18n.LangTA, i18n.DetermineLocale("ta", "en-US,en;q=0.9"))
	})

	t.Run("header used when no query param", func(t *testing.T) {
		assert.Equal(t, i18n.LangTA, i18n.DetermineLocale("", "ta-IN,ta;q=0.9,en;q=0.8"))
	})

	t.Run("unsupported header languages skipped", func(t *testing.T) {
		assert.Equal(t, i18n.LangTA, i18n.DetermineLocale("", "fr-FR,ta;q=0.7"))
	})

	t.Run("defaults to english", func(t *testing.T) {
		assert.Equal(t, i18n.LangEN, i18n.DetermineLocale("", ""))
		assert.Equal(t, i18n.LangEN, i18n.DetermineLocale("de", "fr"))
	})
}
