package auth

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/store"
	"github.com/taskflowhq/taskflow-api/internal/validators"
)

const (
	codeTTL        = 5 * time.Minute
	resendCooldown = 10 * time.Minute
	tokenTTL       = 24 * time.Hour
)

// Service runs the phone + one-time-code login flow and owns the durable
// session slot. The resend cooldown is advisory only: it is reported to the
// client but never enforced on the next RequestCode call.
type Service struct {
	store     *store.Store
	codes     CodeStore
	sms       SMSSender
	audit     *audit.Dispatcher
	jwtSecret string

	Now     func() time.Time
	NewCode func() string

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func NewService(
	st *store.Store,
	codes CodeStore,
	sms SMSSender,
	auditDispatcher *audit.Dispatcher,
	jwtSecret string,
) *Service {
	return &Service{
		store:     st,
		codes:     codes,
		sms:       sms,
		audit:     auditDispatcher,
		jwtSecret: jwtSecret,
		Now:       time.Now,
		NewCode:   newCode,
		lastSent:  make(map[string]time.Time),
	}
}

func newCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// RequestCode issues a fresh 6-digit code for phone and hands it to the SMS
// transport. The returned duration is the advisory resend cooldown.
func (s *Service) RequestCode(ctx context.Context, phone string) (time.Duration, error) {
	if !validators.IsPhoneValid(phone) {
		return 0, httperr.ErrBusiness("invalid_phone")
	}

	code := s.NewCode()
	if err := s.codes.Store(ctx, phone, code, codeTTL); err != nil {
		return 0, err
	}

	if err := s.sms.SendVerification(ctx, phone, code); err != nil {
		return 0, httperr.ErrBusiness("sms_transport_failed")
	}

	s.mu.Lock()
	s.lastSent[phone] = s.Now()
	s.mu.Unlock()

	return resendCooldown, nil
}

// CheckCode validates a pending code. Valid codes are single use; expired
// entries are purged; a mismatch keeps the entry alive for another attempt.
func (s *Service) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	return s.codes.Check(ctx, phone, code)
}

// ResendAvailableIn reports how long the client should keep its resend
// button disabled. Zero means resend is available.
func (s *Service) ResendAvailableIn(phone string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	sent, ok := s.lastSent[phone]
	if !ok {
		return 0
	}
	remaining := resendCooldown - s.Now().Sub(sent)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Login authenticates by phone lookup alone. The password is required to be
// present but is never checked against a stored credential; that gap is
// preserved from the original flow and documented rather than fixed.
func (s *Service) Login(phone, password string) (models.User, string, error) {
	if phone == "" || password == "" {
		return models.User{}, "", httperr.ErrBusiness("missing_required_field")
	}

	user, found, err := s.store.UserByPhone(phone)
	if err != nil {
		return models.User{}, "", err
	}
	if !found {
		return models.User{}, "", httperr.ErrBusiness("phone_not_found")
	}

	if err := s.store.SetCurrentUser(user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	s.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "login",
		Entity: "user",
	})

	return user, token, nil
}

// Logout tears down the persisted session.
func (s *Service) Logout(userID string) error {
	if err := s.store.ClearCurrentUser(); err != nil {
		return err
	}
	s.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "logout",
		Entity: "user",
	})
	return nil
}

// CurrentUser rehydrates the session from the durable slot, as the
// application does at startup.
func (s *Service) CurrentUser() (models.User, bool, error) {
	return s.store.CurrentUser()
}

// SendInvitation delivers an invitation SMS on behalf of inviter.
func (s *Service) SendInvitation(ctx context.Context, phone, inviter, role string) error {
	if !validators.IsPhoneValid(phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	if err := s.sms.SendInvitation(ctx, phone, inviter, role); err != nil {
		return httperr.ErrBusiness("sms_transport_failed")
	}
	return nil
}

// --------- JWT ---------

func (s *Service) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  s.Now().Add(tokenTTL).Unix(),
		"iat":  s.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
