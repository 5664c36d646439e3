// Seeds the database with a demo user, three months of generated
// transactions and an analyzed profile. Useful for local frontend work
// and manual testing without real bank exports.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"finsight/internal/analysis"
	"finsight/internal/categorizer"
	"finsight/internal/models"
	"finsight/internal/repository"
	"finsight/pkg/auth"
	"finsight/pkg/config"
	"finsight/pkg/logger"
	"finsight/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@finsight.local"
	demoUsername = "demo"
	demoPassword = "demo1234"

	demoTransactions = 100
	demoDays         = 90
)

type pool struct {
	descriptions []string
	min, max     float64
	txType       models.TransactionType
}

// Description pools with realistic amount ranges per category.
var pools = []pool{
	{
		descriptions: []string{
			"SWIGGY FOOD DELIVERY", "ZOMATO ORDER", "DOMINOS PIZZA", "MCDONALDS",
			"STARBUCKS COFFEE", "GROCERY STORE", "SUPERMARKET", "RESTAURANT BILL",
		},
		min: 50, max: 800, txType: models.TypeDebit,
	},
	{
		descriptions: []string{
			"UBER RIDE", "OLA CAB", "PETROL PUMP", "DIESEL FILLING",
			"BUS TICKET", "TRAIN TICKET", "PARKING FEE", "TOLL GATE",
		},
		min: 20, max: 500, txType: models.TypeDebit,
	},
	{
		descriptions: []string{
			"AMAZON PURCHASE", "FLIPKART ORDER", "MYNTRA SHOPPING", "CLOTHES STORE",
			"ELECTRONICS SHOP", "BOOKSTORE", "ONLINE SHOPPING", "MALL PURCHASE",
		},
		min: 100, max: 2000, txType: models.TypeDebit,
	},
	{
		descriptions: []string{
			"ELECTRICITY BILL", "WATER BILL", "INTERNET BILL", "PHONE BILL",
			"GAS BILL", "RENT PAYMENT", "INSURANCE PREMIUM", "CREDIT CARD BILL",
		},
		min: 200, max: 1500, txType: models.TypeDebit,
	},
	{
		descriptions: []string{
			"NETFLIX SUBSCRIPTION", "SPOTIFY PREMIUM", "MOVIE TICKET", "GAME PURCHASE",
			"CONCERT TICKET", "THEATER SHOW", "GAMING STORE", "STREAMING SERVICE",
		},
		min: 50, max: 1000, txType: models.TypeDebit,
	},
	{
		descriptions: []string{
			"SALARY CREDIT", "BONUS PAYMENT", "FREELANCE INCOME", "INVESTMENT RETURN",
			"REFUND CREDIT", "CASHBACK REWARD", "INTEREST EARNED", "DIVIDEND PAYMENT",
		},
		min: 5000, max: 50000, txType: models.TypeCredit,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	stRepo := repository.NewStatementRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err == nil {
		appLogger.Info("Demo user already exists, skipping", zap.String("email", user.Email))
		return
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now()
	user = &models.User{
		ID:        uuid.New(),
		Username:  demoUsername,
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	st := &models.Statement{
		ID:        uuid.New(),
		UserID:    user.ID,
		Source:    models.StatementSourceCSV,
		FileName:  "demo_transactions.csv",
		FileSize:  0,
		FileURL:   "/uploads/demo_transactions.csv",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := stRepo.Create(ctx, st); err != nil {
		appLogger.Fatal("Failed to create demo statement", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	table := generateTransactions(rng, user.ID, st.ID, now)
	table = categorizer.CategorizeBatch(table)

	batch := make([]*models.Transaction, len(table))
	for i := range table {
		batch[i] = &table[i]
	}
	if err := txRepo.CreateBatch(ctx, batch); err != nil {
		appLogger.Fatal("Failed to insert demo transactions", zap.Error(err))
	}

	target := decimal.NewFromInt(10000)
	profile := &models.UserProfile{
		CreatedDate: now,
		UserInfo: models.UserInfo{
			MonthlyIncome: decimal.NewFromInt(50000),
			AgeBand:       "26-35",
			Occupation:    "Software Engineer",
		},
		FinancialGoals: models.FinancialGoals{
			MonthlySavingsTarget: target,
			PriorityCategories:   []models.Category{models.CategoryInvestments},
			CutCostAreas:         []models.Category{models.CategoryFoodDining, models.CategoryShopping},
		},
	}
	profile.TransactionAnalysis = analysis.Analyze(table, target)

	if err := profileRepo.Upsert(ctx, user.ID, profile); err != nil {
		appLogger.Fatal("Failed to save demo profile", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.Int("transactions", len(table)),
		zap.Int("health_score", profile.TransactionAnalysis.FinancialHealthScore),
	)
}

func generateTransactions(rng *rand.Rand, userID, statementID uuid.UUID, now time.Time) []models.Transaction {
	start := now.AddDate(0, 0, -demoDays)

	table := make([]models.Transaction, 0, demoTransactions)
	for i := 0; i < demoTransactions; i++ {
		p := pools[rng.Intn(len(pools))]
		amount := p.min + rng.Float64()*(p.max-p.min)

		table = append(table, models.Transaction{
			ID:          uuid.New(),
			StatementID: statementID,
			UserID:      userID,
			Date:        start.AddDate(0, 0, rng.Intn(demoDays)),
			Description: p.descriptions[rng.Intn(len(p.descriptions))],
			Amount:      decimal.NewFromFloat(amount).Round(2),
			Type:        p.txType,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return table
}
