package verification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
)

type fakeStore struct {
	codes map[string]int
	ttls  map[string]time.Duration
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{codes: make(map[string]int), ttls: make(map[string]time.Duration)}
}

func (f *fakeStore) Put(ctx context.Context, email string, code int, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.codes[email] = code
	f.ttls[email] = ttl
	return nil
}

func (f *fakeStore) Get(ctx context.Context, email string) (int, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	code, ok := f.codes[email]
	return code, ok, nil
}

func (f *fakeStore) Delete(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.codes, email)
	return nil
}

type fakeMailer struct {
	to, subject, body string
	sends             int
	err               error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.body = to, subject, body
	f.sends++
	return nil
}

func newTestService(store Store, mailer *fakeMailer) Service {
	return NewService(store, mailer, 10*time.Minute, zap.NewNop().Sugar())
}

func TestSendCodeMailsAndStoresSixDigitCode(t *testing.T) {
	store := newFakeStore()
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	code, err := svc.SendCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if code < 100000 || code > 999999 {
		t.Fatalf("code %d outside [100000, 999999]", code)
	}
	if mailer.to != "a@b.com" {
		t.Fatalf("mailed to %q", mailer.to)
	}
	if !strings.Contains(mailer.body, "verification code") {
		t.Fatalf("unexpected mail body %q", mailer.body)
	}
	if store.codes["a@b.com"] != code {
		t.Fatalf("stored code %d, mailed %d", store.codes["a@b.com"], code)
	}
	if store.ttls["a@b.com"] != 10*time.Minute {
		t.Fatalf("ttl = %v, want 10m", store.ttls["a@b.com"])
	}
}

func TestSendCodeRangeIsStable(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeMailer{})
	for i := 0; i < 200; i++ {
		code, err := svc.SendCode(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if code < 100000 || code > 999999 {
			t.Fatalf("code %d outside [100000, 999999]", code)
		}
	}
}

func TestSendCodeSupersedesPrevious(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeMailer{})

	first, err := svc.SendCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	var second int
	for {
		second, err = svc.SendCode(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if second != first {
			break
		}
	}

	if err := svc.Confirm(context.Background(), first, "a@b.com"); !errors.Is(err, apperror.Input("")) {
		t.Fatalf("superseded code must fail, got %v", err)
	}
	if err := svc.Confirm(context.Background(), second, "a@b.com"); err != nil {
		t.Fatalf("current code must confirm: %v", err)
	}
}

func TestConfirmMatchingCodeConsumesIt(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeMailer{})

	code, err := svc.SendCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.Confirm(context.Background(), code, "a@b.com"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	// Single-use: a second confirmation with the same code fails.
	if err := svc.Confirm(context.Background(), code, "a@b.com"); !errors.Is(err, apperror.Input("")) {
		t.Fatalf("expected failure on reuse, got %v", err)
	}
}

func TestConfirmRejectsNearMisses(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeMailer{})

	code, err := svc.SendCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	for _, wrong := range []int{code + 1, code - 1, 0, 100000 + (code-100000+1)%900000} {
		if wrong == code {
			continue
		}
		if err := svc.Confirm(context.Background(), wrong, "a@b.com"); !errors.Is(err, apperror.Input("")) {
			t.Fatalf("code %d: expected verification failure, got %v", wrong, err)
		}
	}
	// The wrong guesses above must not consume the real code.
	if err := svc.Confirm(context.Background(), code, "a@b.com"); err != nil {
		t.Fatalf("correct code after wrong guesses: %v", err)
	}
}

func TestConfirmUnknownEmailFails(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeMailer{})
	if err := svc.Confirm(context.Background(), 123456, "nobody@b.com"); !errors.Is(err, apperror.Input("")) {
		t.Fatalf("expected verification failure, got %v", err)
	}
}

func TestStoreAndMailerFailuresAreServerErrors(t *testing.T) {
	store := newFakeStore()
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := newTestService(store, mailer)

	if _, err := svc.SendCode(context.Background(), "a@b.com"); !errors.Is(err, apperror.Server("")) {
		t.Fatalf("expected server error for mail failure, got %v", err)
	}
	if len(store.codes) != 0 {
		t.Fatal("no code may be stored when mail delivery fails")
	}

	store.err = errors.New("redis down")
	svc = newTestService(store, &fakeMailer{})
	if err := svc.Confirm(context.Background(), 123456, "a@b.com"); !errors.Is(err, apperror.Server("")) {
		t.Fatalf("expected server error for store failure, got %v", err)
	}
}
