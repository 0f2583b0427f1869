package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
)

// SeedUseCase populates the store with synthetic data on first boot and
// rebuilds it on demand. Generation is driven by a fixed PRNG seed so that
// two resets with the same seed produce identical collections.
type SeedUseCase struct {
	users  UserRepository
	admins AdminRepository
	txns   TransactionRepository
	stats  StatsRepository
	seed   int64
	logger zerolog.Logger
}

// NewSeedUseCase creates a new SeedUseCase.
func NewSeedUseCase(users UserRepository, admins AdminRepository, txns TransactionRepository, stats StatsRepository, seed int64, logger zerolog.Logger) *SeedUseCase {
	return &SeedUseCase{
		users:  users,
		admins: admins,
		txns:   txns,
		stats:  stats,
		seed:   seed,
		logger: logger.With().Str("component", "seed").Logger(),
	}
}

// EnsureSeeded seeds the store if the user collection is empty.
func (uc *SeedUseCase) EnsureSeeded(ctx context.Context) error {
	users, err := uc.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	return uc.Reset(ctx)
}

// Reset overwrites all four collections with a fresh seed and persists a
// recomputed stats snapshot.
func (uc *SeedUseCase) Reset(ctx context.Context) error {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(uc.seed))

	users := seedUsers(now)
	admins := seedAdmins(now)
	txns := seedTransactions(rng, users, now)

	if err := uc.users.ReplaceAll(ctx, users); err != nil {
		return err
	}
	if err := uc.admins.ReplaceAll(ctx, admins); err != nil {
		return err
	}
	if err := uc.txns.ReplaceSeeded(ctx, txns); err != nil {
		return err
	}
	if err := uc.stats.Save(ctx, domain.ComputeSystemStats(users, admins, txns, now)); err != nil {
		return err
	}

	uc.logger.Info().
		Int("users", len(users)).
		Int("admins", len(admins)).
		Int("transactions", len(txns)).
		Msg("store seeded")
	return nil
}

type seedPerson struct {
	first, last, email, phone string
	status                    domain.AccountStatus
	verified                  bool
	balance                   string
}

var seedPeople = []seedPerson{
	{"Abebe", "Bikila", "abebe.bikila@example.com", "+251911234567", domain.StatusActive, true, "15230.50"},
	{"Almaz", "Ayana", "almaz.ayana@example.com", "+251911234568", domain.StatusActive, true, "8790.00"},
	{"Kenenisa", "Bekele", "kenenisa.bekele@example.com", "+251911234569", domain.StatusActive, false, "2450.75"},
	{"Tirunesh", "Dibaba", "tirunesh.dibaba@example.com", "+251911234570", domain.StatusActive, true, "31200.25"},
	{"Haile", "Gebrselassie", "haile.g@example.com", "+251911234571", domain.StatusInactive, true, "540.00"},
	{"Derartu", "Tulu", "derartu.tulu@example.com", "+251911234572", domain.StatusActive, false, "12000.00"},
	{"Feyisa", "Lilesa", "feyisa.lilesa@example.com", "+251911234573", domain.StatusSuspended, false, "90.10"},
	{"Meseret", "Defar", "meseret.defar@example.com", "+251911234574", domain.StatusActive, true, "6675.40"},
}

// seedUsers returns the fixed user fixtures. Counts and order are part of
// the deterministic-seed contract the tests rely on.
func seedUsers(now time.Time) []domain.Account {
	users := make([]domain.Account, 0, len(seedPeople))
	for i, p := range seedPeople {
		balance, _ := decimal.NewFromString(p.balance)
		users = append(users, domain.Account{
			ID:            fmt.Sprintf("user-%03d", i+1),
			Kind:          domain.KindUser,
			FirstName:     p.first,
			LastName:      p.last,
			Email:         p.email,
			Phone:         p.phone,
			Role:          domain.RoleUser,
			Status:        p.status,
			CreatedAt:     now.AddDate(0, 0, -(len(seedPeople) - i)),
			WalletBalance: balance,
			IsVerified:    p.verified,
			Avatar:        defaultAvatar(p.first, p.last),
		})
	}
	return users
}

// seedAdmins returns the fixed admin fixtures: one superadmin and two
// admins, one of them inactive.
func seedAdmins(now time.Time) []domain.Account {
	fixtures := []struct {
		first, last, email string
		role               domain.Role
		status             domain.AccountStatus
	}{
		{"Selam", "Tesfaye", "selam.tesfaye@chapa.co", domain.RoleSuperAdmin, domain.StatusActive},
		{"Dawit", "Mekonnen", "dawit.mekonnen@chapa.co", domain.RoleAdmin, domain.StatusActive},
		{"Hana", "Girma", "hana.girma@chapa.co", domain.RoleAdmin, domain.StatusInactive},
	}

	admins := make([]domain.Account, 0, len(fixtures))
	for i, f := range fixtures {
		admins = append(admins, domain.Account{
			ID:            fmt.Sprintf("admin-%03d", i+1),
			Kind:          domain.KindAdmin,
			FirstName:     f.first,
			LastName:      f.last,
			Email:         f.email,
			Phone:         fmt.Sprintf("+2519112346%02d", i),
			Role:          f.role,
			Status:        f.status,
			CreatedAt:     now.AddDate(0, -1, -i),
			WalletBalance: decimal.Zero,
			IsVerified:    true,
			Avatar:        defaultAvatar(f.first, f.last),
			Permissions:   domain.PermissionsForRole(f.role),
		})
	}
	return admins
}

var (
	expenseCategories = []string{"Shopping", "Utilities", "Transport", "Food", "Entertainment", "Rent"}
	incomeCategories  = []string{"Salary", "Refund", "Transfer", "Freelance"}
	counterparties    = []string{"Ethio Telecom", "Addis Mart", "Sheger Cafe", "Dashen Bank", "Anbessa Transport", "Zemen Electronics"}
)

// seedTransactions generates the synthetic transaction collection:
// 70/30 expense/income, 90/5/5 completed/pending/failed, randomized
// amounts, categories, methods, and counterparties.
func seedTransactions(rng *rand.Rand, users []domain.Account, now time.Time) []domain.Transaction {
	methods := []domain.PaymentMethod{
		domain.MethodChapaWallet,
		domain.MethodBankTransfer,
		domain.MethodCard,
		domain.MethodMobileMoney,
	}

	txns := make([]domain.Transaction, 0, SeededTransactionCount)
	for i := 0; i < SeededTransactionCount; i++ {
		owner := users[rng.Intn(len(users))]

		txnType := domain.TypeExpense
		if rng.Float64() >= 0.7 {
			txnType = domain.TypeIncome
		}

		status := domain.StatusCompleted
		switch r := rng.Float64(); {
		case r >= 0.95:
			status = domain.StatusFailed
		case r >= 0.90:
			status = domain.StatusPending
		}

		amount := decimal.NewFromFloat(10 + rng.Float64()*4990).Round(2)

		var category, recipient, sender, description string
		counterparty := counterparties[rng.Intn(len(counterparties))]
		if txnType == domain.TypeExpense {
			category = expenseCategories[rng.Intn(len(expenseCategories))]
			description = "Payment to " + counterparty
			if rng.Float64() < 0.8 {
				recipient = counterparty
			}
		} else {
			category = incomeCategories[rng.Intn(len(incomeCategories))]
			description = "Received from " + counterparty
			if rng.Float64() < 0.8 {
				sender = counterparty
			}
		}

		fee := decimal.Zero
		if txnType == domain.TypeExpense {
			rate, _ := decimal.NewFromString(expenseFeeRate)
			fee = amount.Mul(rate).Round(2)
		}

		date := now.
			AddDate(0, 0, -rng.Intn(90)).
			Add(-time.Duration(rng.Intn(24*60)) * time.Minute)

		txns = append(txns, domain.Transaction{
			ID:          fmt.Sprintf("TXN-%03d", i+1),
			UserID:      owner.ID,
			Type:        txnType,
			Amount:      amount,
			Description: description,
			Date:        date,
			Status:      status,
			Category:    category,
			Method:      methods[rng.Intn(len(methods))],
			Recipient:   recipient,
			Sender:      sender,
			Reference:   fmt.Sprintf("CHP-%08d", rng.Intn(100000000)),
			Fee:         fee,
		})
	}
	return txns
}
