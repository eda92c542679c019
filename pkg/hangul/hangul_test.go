package hangul

import "testing"

func TestIsSyllable(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		want  bool
	}{
		{"block start 가", 0xAC00, true},
		{"block end 힣", 0xD7A3, true},
		{"common 한", '한', true},
		{"common 컴", '컴', true},
		{"one before block", 0xABFF, false},
		{"one past block", 0xD7A4, false},
		{"compatibility jamo ㄱ", 'ㄱ', false},
		{"conjoining jamo", 0x1100, false},
		{"latin", 'A', false},
		{"digit", '7', false},
		{"space", ' ', false},
		{"cjk ideograph", '北', false},
		{"hiragana", 'あ', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSyllable(tt.input); got != tt.want {
				t.Errorf("IsSyllable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"pure hangul", "가나다", "가나다"},
		{"interior space deleted", "가 나", "가나"},
		{"mixed script", "hello 안녕 world 하세요!", "안녕하세요"},
		{"punctuation and digits", "1가,2나.3다", "가나다"},
		{"jamo dropped", "ㄱㅏ가", "가"},
		{"no hangul at all", "abc 123 !?", ""},
		{"newlines deleted", "안녕\n하세요", "안녕하세요"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.input); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractOnlySyllablesAndShorter(t *testing.T) {
	inputs := []string{
		"가abc나 다ㄱㅏ라!",
		"아버지가 방에 들어가신다.",
		"mixed 한글 and English, 123",
		"",
	}
	for _, in := range inputs {
		got := Extract(in)
		if len([]rune(got)) > len([]rune(in)) {
			t.Errorf("Extract(%q) longer than input", in)
		}
		for _, r := range got {
			if !IsSyllable(r) {
				t.Errorf("Extract(%q) produced non-syllable %q", in, r)
			}
		}
	}
}

func TestExtractRunesMatchesExtract(t *testing.T) {
	in := "가abc나 다ㄱㅏ라! 힣"
	if got, want := string(ExtractRunes(in)), Extract(in); got != want {
		t.Errorf("ExtractRunes = %q, Extract = %q", got, want)
	}
}
