package users

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/baechuer/user-directory/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	seq    int
	byID   map[string]domain.User
	emails map[string]string // email -> id

	// injected errors (if set, method returns error)
	getByEmailErr error
	getByIDErr    error
	getAllErr     error
	createErr     error
	updateErr     error
	deleteErr     error

	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:   map[string]domain.User{},
		emails: map[string]string{},
	}
}

func (f *fakeUserRepo) add(u domain.User) domain.User {
	f.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("u%d", f.seq)
	}
	f.byID[u.ID] = u
	f.emails[u.Email] = u.ID
	return u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	id, ok := f.emails[strings.ToLower(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.emails[u.Email]; exists {
		return domain.User{}, domain.ErrEmailTaken()
	}
	return f.add(u), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if upd.Email != nil {
		delete(f.emails, u.Email)
	}
	upd.Apply(&u)
	f.byID[id] = u
	f.emails[u.Email] = id
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return domain.User{}, f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	delete(f.emails, u.Email)
	return u, nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signFn   func(userID string, ttl time.Duration) (string, error)
	verifyFn func(token string) (TokenClaims, error)
}

func (f *fakeSigner) SignSessionToken(userID string, ttl time.Duration) (string, error) {
	if f.signFn != nil {
		return f.signFn(userID, ttl)
	}
	return "tok:" + userID, nil
}

func (f *fakeSigner) VerifySessionToken(token string) (TokenClaims, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	if !strings.HasPrefix(token, "tok:") {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	return TokenClaims{UserID: strings.TrimPrefix(token, "tok:"), Exp: time.Now().Add(time.Hour)}, nil
}

func newSvcForTest() (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	repo := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	svc := NewService(repo, hasher, signer, Config{TokenTTL: time.Hour})
	return svc, repo, hasher, signer
}

func domainCode(e *domain.Error) string { return e.Code }

func requireDomainCode(t interface {
	Helper()
	Fatalf(string, ...any)
}, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
