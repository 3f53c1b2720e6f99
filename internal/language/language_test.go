package language

import "testing"

func TestGetLanguage(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		wantCode string
		wantOK   bool
	}{
		{name: "ExactCode", code: "ja", wantCode: "ja", wantOK: true},
		{name: "UppercaseCode", code: "JA", wantCode: "ja", wantOK: true},
		{name: "MixedCaseRegionCode", code: "zh-hans", wantCode: "zh-Hans", wantOK: true},
		{name: "Unknown", code: "xx", wantOK: false},
		{name: "Empty", code: "", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := GetLanguage(tc.code)
			if ok != tc.wantOK {
				t.Fatalf("GetLanguage(%q) ok = %v, want %v", tc.code, ok, tc.wantOK)
			}
			if ok && got.Code != tc.wantCode {
				t.Fatalf("GetLanguage(%q).Code = %q, want %q", tc.code, got.Code, tc.wantCode)
			}
		})
	}
}

func TestGetSupportedLanguages_SortedByName(t *testing.T) {
	langs := GetSupportedLanguages()
	if len(langs) != len(Languages) {
		t.Fatalf("got %d languages, want %d", len(langs), len(Languages))
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1].Name > langs[i].Name {
			t.Fatalf("languages not sorted: %q before %q", langs[i-1].Name, langs[i].Name)
		}
	}
}
