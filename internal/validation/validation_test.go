package validation

import (
	"testing"

	"github.com/julianstephens/habitkit/internal/constants"
)

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "ada.lovelace@example.com", "x+tag@sub.domain.org"}
	for _, v := range valid {
		if err := Email(v); err != nil {
			t.Errorf("Email(%q) unexpectedly failed: %v", v, err)
		}
	}

	invalid := []string{"", "plainaddress", "@nolocal.com", "no@tld", "two@@example.com", "spa ce@example.com"}
	for _, v := range invalid {
		if err := Email(v); err == nil {
			t.Errorf("Email(%q) unexpectedly passed", v)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("123456"); err != nil {
		t.Errorf("six characters must pass: %v", err)
	}
	if err := Password("12345"); err == nil {
		t.Error("five characters must fail")
	}
	if err := Password(""); err == nil {
		t.Error("empty password must fail")
	}
}

func TestHexColor(t *testing.T) {
	if err := HexColor(""); err != nil {
		t.Errorf("empty color is allowed: %v", err)
	}
	if err := HexColor("#7C3AED"); err != nil {
		t.Errorf("valid color failed: %v", err)
	}
	for _, v := range []string{"7C3AED", "#7C3AE", "#7C3AEDF", "#GGGGGG", "purple"} {
		if err := HexColor(v); err == nil {
			t.Errorf("HexColor(%q) unexpectedly passed", v)
		}
	}
}

func TestFrequency(t *testing.T) {
	for _, f := range constants.ValidFrequencies {
		if err := Frequency(f); err != nil {
			t.Errorf("Frequency(%q) failed: %v", f, err)
		}
	}
	if err := Frequency("hourly"); err == nil {
		t.Error("unknown frequency must fail")
	}
	if err := Frequency(""); err == nil {
		t.Error("empty frequency must fail")
	}
}

func TestTaskRecurrence(t *testing.T) {
	if err := TaskRecurrence(""); err != nil {
		t.Errorf("empty recurrence means none: %v", err)
	}
	for _, r := range constants.ValidTaskRecurrences {
		if err := TaskRecurrence(r); err != nil {
			t.Errorf("TaskRecurrence(%q) failed: %v", r, err)
		}
	}
	if err := TaskRecurrence("fortnightly"); err == nil {
		t.Error("unknown recurrence must fail")
	}
}

func TestTimeOfDay(t *testing.T) {
	if err := TimeOfDay("", true); err != nil {
		t.Errorf("all-day tasks need no time: %v", err)
	}
	if err := TimeOfDay("", false); err == nil {
		t.Error("timed tasks must carry a time")
	}
	if err := TimeOfDay("09:30", false); err != nil {
		t.Errorf("valid time failed: %v", err)
	}
	if err := TimeOfDay("9:30pm", false); err == nil {
		t.Error("malformed time must fail")
	}
}

func TestRequired(t *testing.T) {
	if err := Required("name", "Ada"); err != nil {
		t.Errorf("non-empty value failed: %v", err)
	}
	if err := Required("name", "   "); err == nil {
		t.Error("whitespace-only value must fail")
	}
}
