package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - provision-admin:  Create the admin credential (password read from stdin)
// - create-buckets:   Create the configured storage buckets
// - seed:             Load initial content from a YAML file
// - gallery-cleanup:  Remove transient and duplicate gallery rows through the API
// - gallery-migrate:  Copy externally hosted gallery images into storage through the API
// - publish-metadata: Publish the page metadata snapshot through the API

const envAdminPassword = "FOLIO_ADMIN_PASSWORD"

func main() {
	provisionCmd := flag.NewFlagSet("provision-admin", flag.ExitOnError)
	bucketsCmd := flag.NewFlagSet("create-buckets", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	cleanupCmd := flag.NewFlagSet("gallery-cleanup", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("gallery-migrate", flag.ExitOnError)
	publishCmd := flag.NewFlagSet("publish-metadata", flag.ExitOnError)

	// provision-admin parameters
	provisionUsername := provisionCmd.String("username", "", "Admin username (defaults to auth.username)")

	// seed parameters
	seedFile := seedCmd.String("file", "seed.yaml", "Seed YAML file")

	// remote parameters
	cleanupAPI := cleanupCmd.String("api", "http://localhost:8080", "API base URL")
	cleanupOrphans := cleanupCmd.Bool("purge-orphans", false, "Also delete unreferenced objects from the gallery bucket")
	migrateAPI := migrateCmd.String("api", "http://localhost:8080", "API base URL")
	publishAPI := publishCmd.String("api", "http://localhost:8080", "API base URL")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Provision: provisionFlags{cmd: provisionCmd, username: provisionUsername},
		Buckets:   bucketsFlags{cmd: bucketsCmd},
		Seed:      seedFlags{cmd: seedCmd, file: seedFile},
		Cleanup:   cleanupFlags{cmd: cleanupCmd, api: cleanupAPI, purgeOrphans: cleanupOrphans},
		Migrate:   remoteFlags{cmd: migrateCmd, api: migrateAPI},
		Publish:   remoteFlags{cmd: publishCmd, api: publishAPI},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Provision provisionFlags
	Buckets   bucketsFlags
	Seed      seedFlags
	Cleanup   cleanupFlags
	Migrate   remoteFlags
	Publish   remoteFlags
}

type provisionFlags struct {
	cmd      *flag.FlagSet
	username *string
}

type bucketsFlags struct {
	cmd *flag.FlagSet
}

type seedFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type cleanupFlags struct {
	cmd          *flag.FlagSet
	api          *string
	purgeOrphans *bool
}

type remoteFlags struct {
	cmd *flag.FlagSet
	api *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "provision-admin":
		return handleProvision(ctx, flags)
	case "create-buckets":
		return handleBuckets(ctx, flags)
	case "seed":
		return handleSeed(ctx, flags)
	case "gallery-cleanup":
		return handleCleanup(ctx, flags)
	case "gallery-migrate":
		return handleMigrate(ctx, flags)
	case "publish-metadata":
		return handlePublish(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleProvision(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Provision.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse provision-admin flags")
	}

	password, err := readPassword(os.Stdin)
	if err != nil {
		return err
	}

	return runProvision(ctx, *flags.Provision.username, password)
}

func handleBuckets(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Buckets.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse create-buckets flags")
	}

	return runCreateBuckets(ctx)
}

func handleSeed(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx, *flags.Seed.file)
}

func handleCleanup(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Cleanup.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse gallery-cleanup flags")
	}

	return runRemote(ctx, *flags.Cleanup.api, func(ctx context.Context, r *remote) (any, error) {
		return r.client.CleanupGallery(ctx, *flags.Cleanup.purgeOrphans)
	})
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse gallery-migrate flags")
	}

	return runRemote(ctx, *flags.Migrate.api, func(ctx context.Context, r *remote) (any, error) {
		return r.client.MigrateGallery(ctx)
	})
}

func handlePublish(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Publish.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse publish-metadata flags")
	}

	return runRemote(ctx, *flags.Publish.api, func(ctx context.Context, r *remote) (any, error) {
		return r.client.PublishMetadata(ctx)
	})
}

func printUsage() {
	fmt.Println("Usage: folioctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  provision-admin   Create the admin credential (password on stdin)")
	fmt.Println("  create-buckets    Create the configured storage buckets")
	fmt.Println("  seed              Load initial content from a YAML file")
	fmt.Println("  gallery-cleanup   Remove transient and duplicate gallery rows")
	fmt.Println("  gallery-migrate   Copy external gallery images into storage")
	fmt.Println("  publish-metadata  Publish the page metadata snapshot")
	fmt.Println("")
	fmt.Println("Remote commands read the admin password from " + envAdminPassword + " or stdin.")
	fmt.Println("Use 'folioctl <command> -h' for more information about a command.")
}
