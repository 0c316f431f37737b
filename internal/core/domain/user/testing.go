package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "storemap/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakeResetTokenGenerator struct {
	Token string
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: token}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() PasswordResetToken {
	return PasswordResetToken(g.Token)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByValidResetToken(
	ctx context.Context,
	token PasswordResetToken,
	now time.Time,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	ix, ok := r.findByValidResetToken(token, now)
	if !ok {
		return u, ErrResetTokenInvalidOrExpired
	}
	return r.Users[ix], nil
}

func (r *FakeUserRepository) SetResetToken(
	ctx context.Context,
	id ID,
	token PasswordResetToken,
	expiresAt time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not set reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].ResetToken = c.NewOptional(token, true)
			r.Users[ix].ResetTokenExpiresAt = c.NewOptional(expiresAt, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) ConsumeResetToken(
	ctx context.Context,
	token PasswordResetToken,
	now time.Time,
	hash PasswordHash,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	ix, ok := r.findByValidResetToken(token, now)
	if !ok {
		return u, ErrResetTokenInvalidOrExpired
	}
	r.Users[ix].PasswordHash = hash
	r.Users[ix].ResetToken = c.NewOptional(PasswordResetToken(""), false)
	r.Users[ix].ResetTokenExpiresAt = c.NewOptional(time.Time{}, false)
	return r.Users[ix], nil
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].ResetToken = c.NewOptional(PasswordResetToken(""), false)
			r.Users[ix].ResetTokenExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) findByValidResetToken(token PasswordResetToken, now time.Time) (int, bool) {
	for ix, u := range r.Users {
		if !u.ResetToken.IsPresent || u.ResetToken.Value != token {
			continue
		}
		if !u.ResetTokenExpiresAt.IsPresent || !u.ResetTokenExpiresAt.Value.After(now) {
			continue
		}
		return ix, true
	}
	return 0, false
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userId, ok := r.UserIdByToken[token]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendResetToken(
	ctx context.Context,
	user User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return ErrNotificationUnavailable
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, user)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSentTo() User {
	l := len(s.SentTo)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.SentTo[l-1]
}
