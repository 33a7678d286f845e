package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/repository"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/service"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/infrastructure/memory"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/infrastructure/sqlite"
	"github.com/Luka12345937/MULUMBA-Beleive/internal/security"
	"github.com/Luka12345937/MULUMBA-Beleive/pkg/config"
	"github.com/Luka12345937/MULUMBA-Beleive/pkg/logger"
	"github.com/spf13/cobra"
)

const serviceName = "uccpay"

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uccpay",
	Short: "UCC Payment System - tuition payment portal",
	Long: `UCC Payment System is the student portal for university tuition fees.

It provides:
- Student registration with institutional email and strong password checks
- Login to a personal dashboard
- Mobile Money and in-person payment options
- Payment verification (in development)

Accounts are kept in memory for the duration of the session only.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runPortal,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/uccpay/config.yml)")
}

// initServices initializes all services
func initServices(ctx context.Context) (*Services, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if cfg.IsDevMode() {
		level = slog.LevelDebug
	}
	log, closeLog, err := logger.Open(serviceName, level, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	services := &Services{Log: log, closeLog: closeLog}

	hasher, err := security.NewHasher(security.Options{
		Algorithm:  cfg.PasswordHasher,
		BcryptCost: cfg.BcryptCost,
		Argon2: security.Argon2Params{
			Time:    cfg.Argon2Time,
			Memory:  cfg.Argon2Memory,
			Threads: cfg.Argon2Threads,
		},
	})
	if err != nil {
		services.Close()
		return nil, err
	}

	// Initialize registry storage
	var studentRepo repository.StudentRepository
	switch cfg.RegistryBackend {
	case "sqlite":
		db, err := sqlite.New()
		if err != nil {
			services.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		services.DB = db
		studentRepo = sqlite.NewStudentRepository(db)
	default:
		studentRepo = memory.NewStudentRepository()
	}

	validator := domain.NewValidator(cfg.InstitutionDomain)
	services.Registry = service.NewRegistry(studentRepo, hasher, validator, log)
	services.Payments = service.NewPaymentService(log)

	log.Debug("services initialized",
		"registry_backend", cfg.RegistryBackend,
		"password_hasher", hasher.Algorithm(),
		"institution_domain", validator.Domain(),
	)

	return services, nil
}

// Services holds all initialized services
type Services struct {
	DB       *sqlite.DB
	Log      *slog.Logger
	Registry *service.Registry
	Payments *service.PaymentService

	closeLog func() error
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
	if s.closeLog != nil {
		s.closeLog()
	}
}
