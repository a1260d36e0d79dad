// internal/promptbuild/promptbuild_test.go
package promptbuild

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		template    string
		keywords    []string
		want        string
	}{
		{
			name:        "正常系: 代表例",
			instruction: "Translate the text.",
			template:    "Focus on: {keyword}",
			keywords:    []string{"Legal", "Finance"},
			want:        "Translate the text.\nFocus on: Legal, Finance",
		},
		{
			name:        "正常系: キーワード1件",
			instruction: "Summarize.",
			template:    "Topic: {keyword}.",
			keywords:    []string{"Tax"},
			want:        "Summarize.\nTopic: Tax.",
		},
		{
			name:        "正常系: プレースホルダ複数回出現は全て置換",
			instruction: "Review.",
			template:    "{keyword} first, then {keyword} again",
			keywords:    []string{"A", "B"},
			want:        "Review.\nA, B first, then A, B again",
		},
		{
			name:        "正常系: プレースホルダなしのテンプレートはそのまま",
			instruction: "Check.",
			template:    "No placeholder here",
			keywords:    []string{"X"},
			want:        "Check.\nNo placeholder here",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose(tc.instruction, tc.template, tc.keywords)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 合成結果の不変条件: 改行はちょうど1つ、前半は指示文、後半は置換後テンプレート。
func TestCompose_ExactlyOneNewline(t *testing.T) {
	instruction := "Do the thing."
	template := "Use {keyword} wisely. Also {keyword}."
	keywords := []string{"alpha", "beta", "gamma"}

	got := Compose(instruction, template, keywords)

	assert.Equal(t, 1, strings.Count(got, "\n"))
	assert.False(t, strings.HasSuffix(got, "\n"))

	parts := strings.SplitN(got, "\n", 2)
	assert.Equal(t, instruction, parts[0])
	joined := strings.Join(keywords, ", ")
	assert.Equal(t, strings.ReplaceAll(template, KeywordPlaceholder, joined), parts[1])
}

func TestInstructions_ForLang(t *testing.T) {
	full := Instructions{EN: "english", JA: "日本語", VI: "tiếng Việt"}
	enOnly := Instructions{EN: "english"}

	tests := []struct {
		name  string
		instr Instructions
		lang  Lang
		want  string
	}{
		{"指定言語あり: ja", full, LangJA, "日本語"},
		{"指定言語あり: vi", full, LangVI, "tiếng Việt"},
		{"指定言語あり: en", full, LangEN, "english"},
		{"フォールバック: jaが空なら英語", enOnly, LangJA, "english"},
		{"フォールバック: viが空なら英語", enOnly, LangVI, "english"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.instr.ForLang(tc.lang))
		})
	}
}

func TestPreview(t *testing.T) {
	instr := Instructions{EN: "Translate.", JA: "翻訳してください。"}

	tests := []struct {
		name     string
		lang     Lang
		context  string
		keywords []string
		want     string
	}{
		{
			name:     "en: コンテキストの後ろに二重引用符のキーワード",
			lang:     LangEN,
			context:  "Keep the tone formal.",
			keywords: []string{"Legal", "Finance"},
			want:     "Translate.\nKeep the tone formal. \"Legal\" \"Finance\"",
		},
		{
			name:     "ja: 鉤括弧のキーワードをコンテキストの前に置く",
			lang:     LangJA,
			context:  "文体は丁寧に。",
			keywords: []string{"法務"},
			want:     "翻訳してください。\n「法務」文体は丁寧に。",
		},
		{
			name:     "vi: 指示文は英語にフォールバック",
			lang:     LangVI,
			context:  "",
			keywords: []string{"Pháp lý"},
			want:     "Translate.\n\"Pháp lý\"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Preview(instr, tc.lang, tc.context, tc.keywords))
		})
	}
}
