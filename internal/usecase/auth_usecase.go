package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
)

// AuthUseCase drives the session state machine: anonymous, authenticating,
// authenticated, error. Successful login and registration persist the
// session snapshot; logout clears it.
//
// Password handling is deliberately the platform's mock contract: any
// password of at least domain.MinPasswordLength characters is accepted for
// an existing active account. Swap checkPassword for a real credential
// check to change that.
type AuthUseCase struct {
	users    UserRepository
	admins   AdminRepository
	sessions SessionRepository
	latency  *Latency
	logger   zerolog.Logger

	mu        sync.Mutex
	state     domain.SessionState
	prevState domain.SessionState
	current   *domain.Account
	lastErr   error
}

// NewAuthUseCase creates a new AuthUseCase in the anonymous state.
func NewAuthUseCase(users UserRepository, admins AdminRepository, sessions SessionRepository, latency *Latency, logger zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		admins:    admins,
		sessions:  sessions,
		latency:   latency,
		logger:    logger.With().Str("component", "auth").Logger(),
		state:     domain.SessionAnonymous,
		prevState: domain.SessionAnonymous,
	}
}

// Restore loads a persisted session snapshot, if any, and resumes the
// authenticated state. Called once at startup.
func (uc *AuthUseCase) Restore(ctx context.Context) error {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if session == nil || !session.IsAuthenticated || session.User == nil {
		return nil
	}

	uc.mu.Lock()
	uc.state = domain.SessionAuthenticated
	uc.prevState = domain.SessionAuthenticated
	uc.current = session.User
	uc.mu.Unlock()

	uc.logger.Info().Str("account_id", session.User.ID).Msg("session restored")
	return nil
}

// State returns the current session state.
func (uc *AuthUseCase) State() domain.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// CurrentAccount returns the authenticated account, or nil.
func (uc *AuthUseCase) CurrentAccount() *domain.Account {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Err returns the error of the last failed transition, or nil.
func (uc *AuthUseCase) Err() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.lastErr
}

func (uc *AuthUseCase) beginAuth() {
	uc.mu.Lock()
	if uc.state != domain.SessionError {
		uc.prevState = uc.state
	}
	uc.state = domain.SessionAuthenticating
	uc.mu.Unlock()
}

func (uc *AuthUseCase) fail(err error) error {
	uc.mu.Lock()
	uc.state = domain.SessionError
	uc.lastErr = err
	uc.mu.Unlock()

	uc.logger.Warn().Err(err).Msg("authentication failed")
	return err
}

func (uc *AuthUseCase) succeed(ctx context.Context, account *domain.Account) error {
	if err := uc.sessions.Save(ctx, domain.Session{User: account, IsAuthenticated: true}); err != nil {
		return uc.fail(err)
	}

	uc.mu.Lock()
	uc.state = domain.SessionAuthenticated
	uc.prevState = domain.SessionAuthenticated
	uc.current = account
	uc.lastErr = nil
	uc.mu.Unlock()
	return nil
}

// findByEmail searches the user collection first, then the admins.
func (uc *AuthUseCase) findByEmail(ctx context.Context, email string) *domain.Account {
	if account, err := uc.users.GetByEmail(ctx, email); err == nil {
		return account
	}
	if account, err := uc.admins.GetByEmail(ctx, email); err == nil {
		return account
	}
	return nil
}

// checkPassword is the mock credential check: length only, no stored hash.
func (uc *AuthUseCase) checkPassword(password string) error {
	return domain.ValidatePassword(password)
}

// Login authenticates an account by email. Unknown emails and known emails
// are indistinguishable to the caller; deactivated accounts and short
// passwords get specific errors.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	uc.beginAuth()

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, uc.fail(err)
	}

	account := uc.findByEmail(ctx, email)
	if account == nil {
		return nil, uc.fail(domain.ErrInvalidCredentials)
	}
	if !account.IsActive() {
		return nil, uc.fail(domain.ErrAccountDeactivated)
	}
	if err := uc.checkPassword(password); err != nil {
		return nil, uc.fail(err)
	}

	now := time.Now().UTC()
	account.LastLogin = &now
	if err := uc.saveAccount(ctx, *account); err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.succeed(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login succeeded")
	return account, nil
}

func (uc *AuthUseCase) saveAccount(ctx context.Context, account domain.Account) error {
	if account.Kind == domain.KindAdmin {
		return uc.admins.Update(ctx, account)
	}
	return uc.users.Update(ctx, account)
}

// RegisterInput is the self-service registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      domain.Role
}

// Register creates a new user account and authenticates it immediately.
// Self-registration is only ever role user; asking for anything else is
// rejected outright.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	uc.beginAuth()

	if input.Role != "" && input.Role != domain.RoleUser {
		return nil, uc.fail(domain.ErrRoleNotPermitted)
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, uc.fail(err)
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, uc.fail(err)
	}

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, uc.fail(err)
	}

	if uc.findByEmail(ctx, input.Email) != nil {
		return nil, uc.fail(domain.ErrEmailTaken)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:            fmt.Sprintf("user-%d", now.UnixMilli()),
		Kind:          domain.KindUser,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         domain.NormalizeEmail(input.Email),
		Phone:         input.Phone,
		Role:          domain.RoleUser,
		Status:        domain.StatusActive,
		CreatedAt:     now,
		LastLogin:     &now,
		WalletBalance: decimal.Zero,
		Avatar:        defaultAvatar(input.FirstName, input.LastName),
	}

	if err := uc.users.Create(ctx, account); err != nil {
		return nil, uc.fail(err)
	}
	if err := uc.succeed(ctx, &account); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("account_id", account.ID).Msg("account registered")
	return &account, nil
}

// CreateAccountInput is the privileged account-creation payload.
type CreateAccountInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      domain.Role
}

// CreateAccount is the privileged creation path. The actor's role gates
// what can be created: nobody creates superadmins, only superadmins create
// admins, admins and superadmins create users. The new account is not
// signed in.
func (uc *AuthUseCase) CreateAccount(ctx context.Context, input CreateAccountInput, actorRole domain.Role) (*domain.Account, error) {
	if !actorRole.IsValid() {
		return nil, domain.ErrNotAuthenticated
	}
	if !actorRole.CanCreate(input.Role) {
		return nil, fmt.Errorf("%w: %s cannot create %s", domain.ErrPrivilegeEscalation, actorRole, input.Role)
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	if uc.findByEmail(ctx, input.Email) != nil {
		return nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	account := domain.Account{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         domain.NormalizeEmail(input.Email),
		Phone:         input.Phone,
		Role:          input.Role,
		Status:        domain.StatusActive,
		CreatedAt:     now,
		WalletBalance: decimal.Zero,
		Avatar:        defaultAvatar(input.FirstName, input.LastName),
	}

	if input.Role == domain.RoleAdmin {
		account.ID = fmt.Sprintf("admin-%d", now.UnixMilli())
		account.Kind = domain.KindAdmin
		account.Permissions = domain.PermissionsForRole(input.Role)
		if err := uc.admins.Create(ctx, account); err != nil {
			return nil, err
		}
	} else {
		account.ID = fmt.Sprintf("user-%d", now.UnixMilli())
		account.Kind = domain.KindUser
		if err := uc.users.Create(ctx, account); err != nil {
			return nil, err
		}
	}

	uc.logger.Info().
		Str("account_id", account.ID).
		Str("role", string(account.Role)).
		Str("actor_role", string(actorRole)).
		Msg("account created")
	return &account, nil
}

// Logout clears the session and returns to the anonymous state.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.sessions.Clear(ctx); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.state = domain.SessionAnonymous
	uc.prevState = domain.SessionAnonymous
	uc.current = nil
	uc.lastErr = nil
	uc.mu.Unlock()

	uc.logger.Info().Msg("logged out")
	return nil
}

// ClearError leaves the error state, restoring the state that preceded it.
func (uc *AuthUseCase) ClearError() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state == domain.SessionError {
		uc.state = uc.prevState
		uc.lastErr = nil
	}
}

func defaultAvatar(firstName, lastName string) string {
	name := url.QueryEscape(firstName + " " + lastName)
	return "https://ui-avatars.com/api/?name=" + name + "&background=0D8ABC&color=fff"
}
