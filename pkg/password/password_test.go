package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !Verify("secret123", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}
