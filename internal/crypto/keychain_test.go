package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt lengths = %d, %d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateNonce_Length(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	n, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}
	if len(n) != 12 {
		t.Fatalf("nonce length = %d, want 12", len(n))
	}
}

func TestNewKeyChainService_RaisesIterationsToMinimum(t *testing.T) {
	svc := NewKeyChainService(10)
	if svc.Iterations() != MinIterations {
		t.Fatalf("Iterations() = %d, want %d", svc.Iterations(), MinIterations)
	}

	svc = NewKeyChainService(200_000)
	if svc.Iterations() != 200_000 {
		t.Fatalf("Iterations() = %d, want 200000", svc.Iterations())
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	salt := bytes.Repeat([]byte{0xAB}, 16)
	k1 := svc.DeriveKey("correct horse battery staple", salt)
	k2 := svc.DeriveKey("correct horse battery staple", salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	k1 := svc.DeriveKey("same password", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKey("same password", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	key := bytes.Repeat([]byte{0x11}, 32)
	nonce, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}

	plaintext := []byte(`{"columns":["Account ID"],"rows":[["ACCT001"]]}`)
	sealed, err := svc.Seal(key, nonce, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if len(sealed) != len(plaintext)+16 {
		t.Fatalf("sealed length = %d, want %d", len(sealed), len(plaintext)+16)
	}

	got, err := svc.Open(key, nonce, sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open() = %q, want %q", got, plaintext)
	}
}

func TestOpen_WrongKeyFailsAuthentication(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	nonce, _ := svc.GenerateNonce()
	sealed, err := svc.Seal(bytes.Repeat([]byte{0x11}, 32), nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = svc.Open(bytes.Repeat([]byte{0x22}, 32), nonce, sealed)
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("Open() error = %v, want ErrAuthentication", err)
	}
}

func TestOpen_TamperedCiphertextFailsAuthentication(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	key := bytes.Repeat([]byte{0x11}, 32)
	nonce, _ := svc.GenerateNonce()
	sealed, _ := svc.Seal(key, nonce, []byte("secret payload"))
	sealed[0] ^= 0xFF

	_, err := svc.Open(key, nonce, sealed)
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("Open() error = %v, want ErrAuthentication", err)
	}
}

func TestOpen_ShortCiphertext(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	_, err := svc.Open(bytes.Repeat([]byte{0x11}, 32), make([]byte, 12), []byte("short"))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("Open() error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestSeal_RejectsBadSizes(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	if _, err := svc.Seal([]byte("short"), make([]byte, 12), []byte("x")); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("Seal() error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := svc.Seal(make([]byte, 32), make([]byte, 8), []byte("x")); !errors.Is(err, ErrInvalidNonceSize) {
		t.Fatalf("Seal() error = %v, want ErrInvalidNonceSize", err)
	}
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	encoded, err := svc.HashPassword("master-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected encoded prefix: %s", encoded)
	}
	if strings.Contains(encoded, "master-password") {
		t.Fatalf("encoded verifier leaks the password")
	}

	ok, err := svc.VerifyPassword("master-password", encoded)
	if err != nil || !ok {
		t.Fatalf("VerifyPassword(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = svc.VerifyPassword("other-password", encoded)
	if err != nil || ok {
		t.Fatalf("VerifyPassword(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestVerifyPassword_InvalidEncoding(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	tests := []string{
		"",
		"plain",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=x$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!$aGFzaA",
	}
	for _, encoded := range tests {
		if _, err := svc.VerifyPassword("pw", encoded); !errors.Is(err, ErrInvalidEncodedHash) {
			t.Errorf("VerifyPassword(%q) error = %v, want ErrInvalidEncodedHash", encoded, err)
		}
	}

	if _, err := svc.VerifyPassword("pw", "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA"); !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("expected ErrIncompatibleVersion, got %v", err)
	}
}

func TestDigest_KnownVector(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := svc.Digest(nil); got != want {
		t.Fatalf("Digest(nil) = %s, want %s", got, want)
	}
}

func TestGeneratePassword_Unique(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	p1, err := svc.GeneratePassword()
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	p2, _ := svc.GeneratePassword()

	if len(p1) < 40 {
		t.Fatalf("generated password too short: %d", len(p1))
	}
	if p1 == p2 {
		t.Fatalf("expected generated passwords to differ")
	}
}
