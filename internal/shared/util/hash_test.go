package util

import "testing"

type hashFixture struct {
	Name   string
	Skills []string
}

func TestHashValueStable(t *testing.T) {
	v := hashFixture{Name: "Jane", Skills: []string{"Go"}}
	got, err := HashValue(v)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	again, _ := HashValue(hashFixture{Name: "Jane", Skills: []string{"Go"}})
	if got != again {
		t.Fatalf("expected stable hash, got %s and %s", got, again)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestHashValueDetectsChanges(t *testing.T) {
	a, _ := HashValue(hashFixture{Name: "Jane", Skills: []string{"Go", "SQL"}})
	b, _ := HashValue(hashFixture{Name: "Jane", Skills: []string{"SQL", "Go"}})
	if a == b {
		t.Fatalf("expected skill order to change the hash")
	}
}

func TestHashValueUnsupported(t *testing.T) {
	if _, err := HashValue(make(chan int)); err == nil {
		t.Fatalf("expected error for unsupported value")
	}
}
