package locale

import "testing"

func TestFormatterEnglish(t *testing.T) {
	f, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.Int(2024), "2024"; got != want {
		t.Errorf("Int(2024) = %q, want %q", got, want)
	}
	if got, want := f.Int(7), "7"; got != want {
		t.Errorf("Int(7) = %q, want %q", got, want)
	}
}

func TestFormatterPersianRoundTrip(t *testing.T) {
	f, err := New("fa")
	if err != nil {
		t.Fatal(err)
	}
	got := f.Int(1403)
	if got == "1403" {
		t.Skipf("x/text has no native digits for %v", f.Tag())
	}
	if back := NormalizeDigits(got); back != "1403" {
		t.Errorf("NormalizeDigits(%q) = %q, want 1403", got, back)
	}
}

func TestNewRejectsBadTag(t *testing.T) {
	if _, err := New("not a tag!"); err == nil {
		t.Fatalf("expected error for malformed tag")
	}
}

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-02-01", "2024-02-01"},
		{"۱۴۰۳/۰۱/۱۵", "1403/01/15"},
		{"٢٠٢٤-٣-١", "2024-3-1"},
		{"２０２４", "2024"},
	}
	for _, tt := range tests {
		if got := NormalizeDigits(tt.in); got != tt.want {
			t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
