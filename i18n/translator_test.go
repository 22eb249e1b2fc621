package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("unsupported_type", map[string]string{"type": "chan int"}); msg != "type chan int is not JSON serializable" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("naive_timestamp", nil); msg == "naive_timestamp" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoesCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator_NilRestoresDictionary(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("too_deep", nil); msg != "X:too_deep" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("too_deep", nil); msg != "value nesting exceeds the configured depth" {
		t.Fatalf("expected dictionary message, got %q", msg)
	}
}
