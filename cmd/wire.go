package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	cachestore "github.com/bnema/workiq-automation/internal/adapters/cache/toml"
	smtpmailer "github.com/bnema/workiq-automation/internal/adapters/mail/smtp"
	checksadapter "github.com/bnema/workiq-automation/internal/adapters/render/checks"
	"github.com/bnema/workiq-automation/internal/adapters/secrets"
	"github.com/bnema/workiq-automation/internal/adapters/workiq"
	"github.com/bnema/workiq-automation/internal/application"
	"github.com/bnema/workiq-automation/internal/catalog"
	"github.com/bnema/workiq-automation/internal/config"
	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg           config.Config
	cache         *cachestore.Store
	queries       *application.QueryService
	briefing      *application.BriefingService
	prep          *application.PrepService
	context       *application.ContextService
	verifier      *application.Verifier
	secrets       ports.SecretResolver
	catalog       func() (catalog.Catalog, error)
	checkRenderer func([]domain.CheckResult, checksadapter.RenderOptions) string
	newMailer     func(ctx context.Context) (ports.Mailer, error)
}

func wireApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if cfg.File != "" {
		logger.Debug("configuration loaded", "file", cfg.File)
	}

	clock := ports.SystemClock{}
	client := workiq.NewClient(cfg.ToolPath)
	cache := cachestore.NewStore(cfg.Cache.Dir, cfg.Cache.TTL, clock, logger)

	queries := application.NewQueryService(client, cache, application.QueryServiceConfig{
		DefaultTenant: cfg.TenantID,
		CacheEnabled:  cfg.Cache.Enabled,
		Timeout:       cfg.QueryTimeout,
	}, logger)

	resolver := secrets.NewResolver()

	a := &app{
		cfg:           cfg,
		cache:         cache,
		queries:       queries,
		briefing:      application.NewBriefingService(queries, clock, logger),
		prep:          application.NewPrepService(queries, clock, logger),
		context:       application.NewContextService(queries, logger),
		verifier:      application.NewVerifier(client, application.VerifierConfig{}, logger),
		secrets:       resolver,
		catalog:       catalog.Load,
		checkRenderer: checksadapter.Render,
	}
	a.newMailer = a.smtpMailer

	return a, nil
}

// smtpMailer resolves the SMTP password reference only when mail is sent.
func (a *app) smtpMailer(ctx context.Context) (ports.Mailer, error) {
	cfg, err := a.smtpConfig(ctx)
	if err != nil {
		return nil, err
	}

	return smtpmailer.NewMailer(cfg), nil
}

func (a *app) smtpConfig(ctx context.Context) (smtpmailer.Config, error) {
	smtpCfg := a.cfg.SMTP
	if smtpCfg.Host == "" {
		return smtpmailer.Config{}, domain.ErrMailNotConfigured
	}

	password := ""
	if smtpCfg.Password != "" {
		resolved, err := a.secrets.Resolve(ctx, smtpCfg.Password)
		if err != nil {
			return smtpmailer.Config{}, fmt.Errorf("resolve smtp password: %w", err)
		}
		password = resolved
	}

	return smtpmailer.Config{
		Host:     smtpCfg.Host,
		Port:     smtpCfg.Port,
		Username: smtpCfg.Username,
		Password: password,
		From:     smtpCfg.From,
	}, nil
}

func defaultLogOutput() io.Writer {
	return os.Stderr
}
