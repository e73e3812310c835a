package i18n

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	ptBR := language.MustParse("pt-BR")
	cases := map[string]language.Tag{
		"":       language.English,
		"en":     language.English,
		"en_US":  language.English,
		"pt-BR":  ptBR,
		"pt_BR":  ptBR,
	}
	for in, want := range cases {
		got, err := ResolveTag(in)
		if err != nil {
			t.Fatalf("ResolveTag(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ResolveTag(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestResolveTagRejectsUnsupported(t *testing.T) {
	for _, in := range []string{"%%bad%", "ja", "zz-ZZ"} {
		got, err := ResolveTag(in)
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Fatalf("ResolveTag(%q) error = %v, want %v", in, err, ErrUnsupportedLanguage)
		}
		if got != Default() {
			t.Fatalf("ResolveTag(%q) = %s, want fallback %s", in, got, Default())
		}
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	en := Printer(language.English)
	if got := en.Sprintf(BoardHealthKey, 12, 20); got != "health: 12/20" {
		t.Fatalf("en health = %q", got)
	}
	pt := Printer(language.MustParse("pt-BR"))
	if got := pt.Sprintf(BoardHealthKey, 12, 20); got != "vida: 12/20" {
		t.Fatalf("pt-BR health = %q", got)
	}
	if got := pt.Sprintf(WinKey); got != "Você venceu!" {
		t.Fatalf("pt-BR win = %q", got)
	}
}

func TestSupportedIsACopy(t *testing.T) {
	tags := Supported()
	tags[0] = language.Japanese
	if Supported()[0] != language.English {
		t.Fatal("Supported() exposed internal slice")
	}
}
