package i18n

import "testing"

func TestNegotiate(t *testing.T) {
	cases := []struct {
		name     string
		explicit string
		accept   string
		fallback string
		want     string
	}{
		{"explicit wins", "es", "en-US", "en", Spanish},
		{"accept header", "", "es-MX,es;q=0.9,en;q=0.5", "en", Spanish},
		{"unsupported header", "", "fr-FR", "en", English},
		{"fallback", "", "", "es", Spanish},
		{"garbage", "??", "", "", English},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Negotiate(tc.explicit, tc.accept, tc.fallback); got != tc.want {
				t.Fatalf("Negotiate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBundlesCoverSameKeys(t *testing.T) {
	for key := range bundles[English] {
		if _, ok := bundles[Spanish][key]; !ok {
			t.Errorf("es bundle missing %q", key)
		}
	}
}

func TestT_Fallbacks(t *testing.T) {
	if got := T("es", "time_conflict"); got == T("en", "time_conflict") {
		t.Fatalf("expected a Spanish message, got %q", got)
	}
	if got := T("de", "time_conflict"); got != bundles[English]["time_conflict"] {
		t.Fatalf("unknown language should fall back to English, got %q", got)
	}
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key should echo, got %q", got)
	}
}
