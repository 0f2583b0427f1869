package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
)

// AccountUseCase handles platform-wide account administration: listing,
// merge-patch updates, admin lifecycle, and user deletion.
type AccountUseCase struct {
	users   UserRepository
	admins  AdminRepository
	latency *Latency
	logger  zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(users UserRepository, admins AdminRepository, latency *Latency, logger zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		users:   users,
		admins:  admins,
		latency: latency,
		logger:  logger.With().Str("component", "accounts").Logger(),
	}
}

// ListUsers returns the user collection.
func (uc *AccountUseCase) ListUsers(ctx context.Context) ([]domain.Account, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return uc.users.List(ctx)
}

// ListAdmins returns the admin collection.
func (uc *AccountUseCase) ListAdmins(ctx context.Context) ([]domain.Account, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return uc.admins.List(ctx)
}

// ListAllAccounts returns the union of the user and admin collections.
func (uc *AccountUseCase) ListAllAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := uc.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(users, admins...), nil
}

// UpdateAccountInput is a merge-patch over an account. Nil fields are left
// unchanged.
type UpdateAccountInput struct {
	FirstName     *string
	LastName      *string
	Phone         *string
	Role          *domain.Role
	Status        *domain.AccountStatus
	IsVerified    *bool
	WalletBalance *decimal.Decimal
}

func applyPatch(account *domain.Account, input UpdateAccountInput) error {
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return domain.ErrInvalidRole
		}
		account.Role = *input.Role
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domain.ErrInvalidStatus
		}
		account.Status = *input.Status
	}
	if input.IsVerified != nil {
		account.IsVerified = *input.IsVerified
	}
	if input.WalletBalance != nil {
		if input.WalletBalance.IsNegative() {
			return domain.ErrInvalidAmount
		}
		account.WalletBalance = *input.WalletBalance
	}
	return nil
}

// UpdateUser merge-patches a user account by id.
func (uc *AccountUseCase) UpdateUser(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	account, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(account, input); err != nil {
		return nil, err
	}
	if err := uc.users.Update(ctx, *account); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("account_id", id).Msg("user updated")
	return account, nil
}

// UpdateAdmin merge-patches an admin account by id. Admins cannot be
// demoted to plain users through this path.
func (uc *AccountUseCase) UpdateAdmin(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error) {
	if input.Role != nil && *input.Role == domain.RoleUser {
		return nil, domain.ErrInvalidRole
	}

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	account, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(account, input); err != nil {
		return nil, err
	}
	if input.Role != nil {
		account.Permissions = domain.PermissionsForRole(account.Role)
	}
	if err := uc.admins.Update(ctx, *account); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("account_id", id).Msg("admin updated")
	return account, nil
}

// AddAdminInput is the payload for creating an administrator.
type AddAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      domain.Role
}

// AddAdmin appends a new administrator. The id is derived from the
// creation timestamp; permissions snapshot the role's set.
func (uc *AccountUseCase) AddAdmin(ctx context.Context, input AddAdminInput) (*domain.Account, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrInvalidRole
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	if _, err := uc.admins.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:            fmt.Sprintf("admin-%d", now.UnixMilli()),
		Kind:          domain.KindAdmin,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         domain.NormalizeEmail(input.Email),
		Phone:         input.Phone,
		Role:          input.Role,
		Status:        domain.StatusActive,
		CreatedAt:     now,
		WalletBalance: decimal.Zero,
		Permissions:   domain.PermissionsForRole(input.Role),
	}

	if err := uc.admins.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("admin added")
	return &account, nil
}

// RemoveAdmin deletes an administrator by id.
func (uc *AccountUseCase) RemoveAdmin(ctx context.Context, id string) error {
	if err := uc.latency.Wait(ctx); err != nil {
		return err
	}
	if err := uc.admins.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info().Str("account_id", id).Msg("admin removed")
	return nil
}

// DeleteUser deletes a user account by id.
func (uc *AccountUseCase) DeleteUser(ctx context.Context, id string) error {
	if err := uc.latency.Wait(ctx); err != nil {
		return err
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info().Str("account_id", id).Msg("user deleted")
	return nil
}
