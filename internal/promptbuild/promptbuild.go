// internal/promptbuild/promptbuild.go

// Package promptbuild はプロンプト文字列の合成ルールを一箇所に集めた純粋関数のパッケージです。
// 以前はサーバの generatePrompt とフロントの Prompt Builder が同じルールを
// 別々に実装しており挙動がズレる恐れがあったため、ここに集約した。
// DBにもネットワークにも依存しない。
package promptbuild

import "strings"

// KeywordPlaceholder はコンテキストテンプレート内の置換対象のリテラル。
const KeywordPlaceholder = "{keyword}"

// Lang はプロンプトの言語です。
type Lang string

const (
	LangEN Lang = "en"
	LangJA Lang = "ja"
	LangVI Lang = "vi"
)

// Instructions は言語別の指示文のセットです。
type Instructions struct {
	EN string
	JA string
	VI string
}

// ForLang は指定言語の指示文を返します。
// フォールバック順: 指定言語 → 英語。
func (i Instructions) ForLang(lang Lang) string {
	switch lang {
	case LangJA:
		if i.JA != "" {
			return i.JA
		}
	case LangVI:
		if i.VI != "" {
			return i.VI
		}
	}
	return i.EN
}

// Compose はサーバ側の正規の合成ルールです。
//  1. キーワード名を ", " で連結する
//  2. テンプレート内の "{keyword}" を全て置換する (先頭だけではない)
//  3. 指示文 + "\n" + 置換後テンプレート を返す (末尾に改行は付けない)
func Compose(instruction, template string, keywords []string) string {
	joined := strings.Join(keywords, ", ")
	substituted := strings.ReplaceAll(template, KeywordPlaceholder, joined)
	return instruction + "\n" + substituted
}

// Preview はフロントの Prompt Builder が使っていた「保存せずに組み立てる」
// プレビュー用の合成ルールです。言語ごとに引用規則が異なる:
//   - en/vi: 自由入力のコンテキストの後ろに、二重引用符で括ったキーワードを付ける
//   - ja:    コンテキストの前に、鉤括弧で括ったキーワードを置く
//
// Compose とは意図的に別ルールであり、統一はしない (挙動互換のため)。
func Preview(instr Instructions, lang Lang, context string, keywords []string) string {
	instruction := instr.ForLang(lang)

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n")

	if lang == LangJA {
		for _, kw := range keywords {
			b.WriteString("「")
			b.WriteString(kw)
			b.WriteString("」")
		}
		if context != "" {
			b.WriteString(context)
		}
		return b.String()
	}

	if context != "" {
		b.WriteString(context)
	}
	for i, kw := range keywords {
		if context != "" || i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(`"`)
		b.WriteString(kw)
		b.WriteString(`"`)
	}
	return b.String()
}
