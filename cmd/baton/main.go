package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/lmittmann/tint"

	"github.com/batonhq/baton/internal/oncall"
	"github.com/batonhq/baton/internal/report"
	"github.com/batonhq/baton/internal/rotation"
	"github.com/batonhq/baton/internal/slack_integration"
)

type Config struct {
	Debug bool `default:"false"`

	// On-call service configuration
	OnCall oncall.Config

	// Rotations file configuration
	Rotations rotation.Config

	// Slack configuration (posting is skipped without a bot token)
	Slack slack_integration.Config

	// Which rotation to report on (the -rotation flag overrides)
	Rotation string

	// Where to write the report ("-" for stdout)
	Output string `default:"-"`

	// Overall run timeout
	Timeout time.Duration `default:"2m"`
}

func main() {
	help := flag.Bool("help", false, "Show help")
	rotationFlag := flag.String("rotation", "", "Rotation to report on (overrides BATON_ROTATION)")
	flag.Parse()

	if *help {
		envconfig.Usage("baton", &Config{})
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Running version:", versioninfo.Short())

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	var c Config
	if err := envconfig.Process("baton", &c); err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if *rotationFlag != "" {
		c.Rotation = *rotationFlag
	}

	if c.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, c.Timeout)
		defer cancelTimeout()
	}

	// Rotations setup
	rotations, err := rotation.Load(c.Rotations)
	if err != nil {
		log.Fatalf("error loading rotations: %v", err)
	}
	rot, err := rotation.Pick(rotations, c.Rotation)
	if err != nil {
		log.Fatalf("error selecting rotation: %v", err)
	}

	// On-call service client setup
	client, err := oncall.New(ctx, c.OnCall)
	if err != nil {
		log.Fatalf("error setting up on-call client: %v", err)
	}

	// Fetch, aggregate, render
	r, err := report.Generate(ctx, client, rot, time.Now())
	if err != nil {
		log.Fatalf("error generating report: %v", err)
	}

	if err := writeReport(c.Output, r.Render()); err != nil {
		log.Fatalf("error writing report: %v", err)
	}

	// Slack delivery
	if c.Slack.Enabled() && rot.SlackChannelID != "" {
		integration, err := slack_integration.New(ctx, c.Slack)
		if err != nil {
			log.Fatalf("error setting up Slack: %v", err)
		}
		if err := integration.PostMessage(ctx, rot.SlackChannelID, r.Blocks()...); err != nil {
			log.Fatalf("error posting report to Slack: %v", err)
		}
		slog.InfoContext(ctx, "posted report to Slack", "channel", rot.SlackChannelID)
	}
}

func writeReport(output, text string) error {
	if output == "" || output == "-" {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", output, err)
	}
	slog.Info("wrote report", "path", output)

	return nil
}
