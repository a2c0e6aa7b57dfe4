package coerce

import (
	"reflect"
	"testing"
)

func TestISODate_Plain(t *testing.T) {
	if d := ISODate("2024-01-05"); d != "2024-01-05" {
		t.Errorf("date = %q, want 2024-01-05", d)
	}
}

func TestISODate_TrailingContentIgnored(t *testing.T) {
	if d := ISODate("2024-01-05T10:30:00Z"); d != "2024-01-05" {
		t.Errorf("date = %q, want 2024-01-05", d)
	}
	if d := ISODate("2024-01-05 some notes"); d != "2024-01-05" {
		t.Errorf("date = %q, want 2024-01-05", d)
	}
}

func TestISODate_Invalid(t *testing.T) {
	for _, v := range []any{"bad-date", "2024/01/05", "Jan 5 2024", 20240105.0, nil, true} {
		if d := ISODate(v); d != "" {
			t.Errorf("ISODate(%v) = %q, want empty", v, d)
		}
	}
}

func TestEpochOK(t *testing.T) {
	e, ok := EpochOK("1970-01-02")
	if !ok || e != 86400 {
		t.Errorf("epoch = %d ok=%v, want 86400 true", e, ok)
	}
	if _, ok := EpochOK(""); ok {
		t.Error("empty date should not be ok")
	}
	// Matches the date shape but is not a real calendar day.
	if _, ok := EpochOK("2024-02-30"); ok {
		t.Error("2024-02-30 should not be ok")
	}
}

func TestString_Scalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{5.0, "5"},
		{7.5, "7.5"},
		{true, "true"},
		{map[string]any{"a": 1.0}, `{"a":1}`},
	}
	for _, c := range cases {
		if got := String(c.in); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStringList_ScalarWrapped(t *testing.T) {
	got := StringList("  one  ")
	if !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("got %v", got)
	}
}

func TestStringList_FiltersBlanks(t *testing.T) {
	got := StringList([]any{" a ", "", "   ", "b", 3.0})
	if !reflect.DeepEqual(got, []string{"a", "b", "3"}) {
		t.Errorf("got %v", got)
	}
}

func TestStringList_Nil(t *testing.T) {
	if got := StringList(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestLines_BulletedString(t *testing.T) {
	in := "- first step\n* second step\n• third step\n\n  plain line"
	want := []string{"first step", "second step", "third step", "plain line"}
	if got := Lines(in); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLines_CRLF(t *testing.T) {
	got := Lines("- a\r\n- b\r\n")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v", got)
	}
}

func TestLines_WholeStringFallback(t *testing.T) {
	if got := Lines("   just one thought   "); !reflect.DeepEqual(got, []string{"just one thought"}) {
		t.Errorf("got %v", got)
	}
}

func TestLines_BlankString(t *testing.T) {
	if got := Lines("   \n  "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestLines_Array(t *testing.T) {
	got := Lines([]any{"a", "", 2.0})
	if !reflect.DeepEqual(got, []string{"a", "2"}) {
		t.Errorf("got %v", got)
	}
}

func TestLines_OtherType(t *testing.T) {
	if got := Lines(42.0); !reflect.DeepEqual(got, []string{"42"}) {
		t.Errorf("got %v", got)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{9.5, 9.5},
		{"7", 7},
		{" 3.5 ", 3.5},
		{"abc", 0},
		{nil, 0},
		{true, 1},
		{[]any{1.0}, 0},
	}
	for _, c := range cases {
		if got := Number(c.in); got != c.want {
			t.Errorf("Number(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("clamp(-3) = %v", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("clamp(42) = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5) = %v", got)
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{nil, false, 0.0, ""} {
		if Truthy(v) {
			t.Errorf("Truthy(%v) = true, want false", v)
		}
	}
	for _, v := range []any{true, 1.0, "x", map[string]any{}, []any{}} {
		if !Truthy(v) {
			t.Errorf("Truthy(%v) = false, want true", v)
		}
	}
}
