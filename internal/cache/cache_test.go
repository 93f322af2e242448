package cache

import "testing"

func TestDigest(t *testing.T) {
	if got := Digest(nil); got != "0000000000000000" {
		t.Fatalf("empty digest: %q", got)
	}
	a, b := Digest([]byte("echo a\n")), Digest([]byte("echo b\n"))
	if len(a) != 16 || a == b {
		t.Fatalf("unexpected digests %q %q", a, b)
	}
	if a != Digest([]byte("echo a\n")) {
		t.Fatal("digest not stable")
	}
}

func TestChanged(t *testing.T) {
	db := New()
	if !db.Changed("install.sh", []byte("v1")) {
		t.Fatal("first sighting should be a change")
	}
	if db.Changed("install.sh", []byte("v1")) {
		t.Fatal("same content reported as change")
	}
	if !db.Changed("install.sh", []byte("v2")) {
		t.Fatal("new content not reported")
	}
	db.Forget("install.sh")
	if !db.Changed("install.sh", []byte("v2")) {
		t.Fatal("forgotten path should report a change")
	}
}
