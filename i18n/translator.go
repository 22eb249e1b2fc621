package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error and diagnostic codes.
// data provides optional metadata to embed in the message (for example,
// "type" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_format":
			msg = "タイムスタンプの形式が不正です"
		case "invalid_date":
			msg = "日付または時刻が範囲外です"
		case "invalid_offset":
			msg = "タイムゾーンオフセットが不正です"
		case "naive_timestamp":
			msg = "タイムゾーンのない日時をローカル時刻として解釈します"
		case "missing_timezone":
			msg = "タイムスタンプにタイムゾーン情報を付与してください。ローカル時刻とみなします"
		case "unsupported_type":
			msg = "JSON に変換できない型です: {type}"
		case "non_finite":
			msg = "NaN や無限大は JSON で表現できません"
		case "duplicate_key":
			msg = "文字列化したキーが重複しています: {key}"
		case "conversion_failed":
			msg = "数値への変換に失敗しました"
		case "too_deep":
			msg = "入力のネストが深すぎます"
		case "duplicate_member":
			msg = "オブジェクトのメンバー名が重複しています"
		}
	default: // "en"
		switch code {
		case "invalid_format":
			msg = "does not match YYYY-MM-DDTHH:MM:SS[.ffffff][Z|+HH:MM|+HHMM]"
		case "invalid_date":
			msg = "date or time out of range"
		case "invalid_offset":
			msg = "timezone offset out of range"
		case "naive_timestamp":
			msg = "Interpreting naive datetime as local. Please add timezone info to timestamps."
		case "missing_timezone":
			msg = "Please add timezone info to timestamps. Assuming local time."
		case "unsupported_type":
			msg = "type {type} is not JSON serializable"
		case "non_finite":
			msg = "NaN and infinite numbers are not JSON serializable"
		case "duplicate_key":
			msg = "stringified map key {key} appears more than once"
		case "conversion_failed":
			msg = "numeric conversion failed"
		case "too_deep":
			msg = "value nesting exceeds the configured depth"
		case "duplicate_member":
			msg = "object member name appears more than once; the last value wins"
		}
	}
	if msg == "" {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
