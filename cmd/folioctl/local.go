package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/infra/auth"
	logs "folio/internal/infra/log"
	"folio/internal/infra/mail"
	"folio/internal/infra/persistence/postgres"
	"folio/internal/infra/storage"
	"folio/internal/usecase"
	"folio/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedDocument mirrors the seed YAML layout.
type seedDocument struct {
	Profile struct {
		Name          string `yaml:"name"`
		Title         string `yaml:"title"`
		Email         string `yaml:"email"`
		Location      string `yaml:"location"`
		Bio           string `yaml:"bio"`
		OGTitle       string `yaml:"ogTitle"`
		OGDescription string `yaml:"ogDescription"`
		OGImageURL    string `yaml:"ogImageUrl"`
	} `yaml:"profile"`
	SocialLinks []struct {
		Label string `yaml:"label"`
		Href  string `yaml:"href"`
	} `yaml:"socialLinks"`
	Experiences []struct {
		Company     string `yaml:"company"`
		Period      string `yaml:"period"`
		Description string `yaml:"description"`
	} `yaml:"experiences"`
}

func (d *seedDocument) toInput() *usecase.SeedInput {
	input := &usecase.SeedInput{
		Profile: usecase.ProfileInput{
			Name:          d.Profile.Name,
			Title:         d.Profile.Title,
			Email:         d.Profile.Email,
			Location:      d.Profile.Location,
			Bio:           d.Profile.Bio,
			OGTitle:       d.Profile.OGTitle,
			OGDescription: d.Profile.OGDescription,
			OGImageURL:    d.Profile.OGImageURL,
		},
		SocialLinks: make([]usecase.SocialLinkInput, 0, len(d.SocialLinks)),
		Experiences: make([]usecase.ExperienceInput, 0, len(d.Experiences)),
	}
	for _, link := range d.SocialLinks {
		input.SocialLinks = append(input.SocialLinks, usecase.SocialLinkInput{Label: link.Label, Href: link.Href})
	}
	for _, exp := range d.Experiences {
		input.Experiences = append(input.Experiences, usecase.ExperienceInput{
			Company:     exp.Company,
			Period:      exp.Period,
			Description: exp.Description,
		})
	}

	return input
}

// databaseApp builds the subset of the server graph needed by the database commands.
// Populate targets are filled once the app is started.
func databaseApp(targets ...any) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewCredentialRepository,
			postgres.NewSessionRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewProfileRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewTokenService,
			mail.NewSMTPMailer,
			impl.NewAuthService,
			impl.NewSeedService,
		),
		fx.Populate(targets...),
	)
}

func withDatabase(ctx context.Context, run func(context.Context) error, targets ...any) error {
	app := databaseApp(targets...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return run(ctx)
}

func runProvision(ctx context.Context, username, password string) error {
	var (
		cfg    *config.Config
		authUC usecase.AuthUsecase
	)

	return withDatabase(ctx, func(ctx context.Context) error {
		if username == "" {
			username = cfg.Auth.Username
		}
		if err := authUC.Provision(ctx, username, password); err != nil {
			return errors.Wrap(err, "failed to provision admin")
		}
		fmt.Printf("Provisioned admin %q\n", username)

		return nil
	}, &cfg, &authUC)
}

func runSeed(ctx context.Context, path string) error {
	doc, err := config.LoadFile[seedDocument](path)
	if err != nil {
		return err
	}

	var seedUC usecase.SeedUsecase

	return withDatabase(ctx, func(ctx context.Context) error {
		out, err := seedUC.Seed(ctx, doc.toInput())
		if err != nil {
			return errors.Wrap(err, "failed to seed content")
		}
		fmt.Printf("Seeded profile %q, %d social links, %d experiences\n",
			out.Profile.Name, out.SocialLinks, out.ExperiencesInserted)

		return nil
	}, &seedUC)
}

func runCreateBuckets(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	provisioner, err := storage.NewProvisioner(ctx, cfg.Storage, logger)
	if err != nil {
		return errors.Wrap(err, "failed to create provisioner")
	}

	results, err := provisioner.EnsureBuckets(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create buckets")
	}
	for _, result := range results {
		state := "exists"
		if result.Created {
			state = "created"
		}
		logger.Info("Bucket ready", slog.String("bucket", result.Bucket), slog.String("state", state))
	}

	return nil
}

// readPassword prefers the environment so scripts can pipe nothing, then falls back to one line of r.
func readPassword(r io.Reader) (string, error) {
	if password := strings.TrimSpace(lookupEnv(envAdminPassword)); password != "" {
		return password, nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required (stdin or " + envAdminPassword + ")")
	}

	return password, nil
}
