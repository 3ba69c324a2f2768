package envutil

import (
	"testing"
	"time"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("EDUBRIDGE_TEST_INT", "abc")
	if got := Int("EDUBRIDGE_TEST_INT", 7); got != 7 {
		t.Fatalf("got=%d want=7", got)
	}
	t.Setenv("EDUBRIDGE_TEST_INT", " 42 ")
	if got := Int("EDUBRIDGE_TEST_INT", 7); got != 42 {
		t.Fatalf("got=%d want=42", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("EDUBRIDGE_TEST_BOOL", "on")
	if !Bool("EDUBRIDGE_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
	t.Setenv("EDUBRIDGE_TEST_BOOL", "maybe")
	if Bool("EDUBRIDGE_TEST_BOOL", false) {
		t.Fatalf("expected default for unparseable value")
	}
}

func TestSeconds(t *testing.T) {
	t.Setenv("EDUBRIDGE_TEST_SECONDS", "-3")
	if got := Seconds("EDUBRIDGE_TEST_SECONDS", time.Minute); got != time.Minute {
		t.Fatalf("got=%s want=1m", got)
	}
	t.Setenv("EDUBRIDGE_TEST_SECONDS", "90")
	if got := Seconds("EDUBRIDGE_TEST_SECONDS", time.Minute); got != 90*time.Second {
		t.Fatalf("got=%s want=90s", got)
	}
}
