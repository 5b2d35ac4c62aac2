// Command scanner is the terminal-side client: it validates a terminal
// against the server, keeps the session on disk and records guest scans.
//
// Usage:
//
//	scanner [flags] login <eventCode> <terminalCode>
//	scanner [flags] scan <guestCode>...
//	scanner [flags] watch
//	scanner [flags] logout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/scanclient"
	"github.com/wb-go/wbf/logger"
)

func main() {
	server := flag.String("server", envOr("EVENTGATE_URL", "http://localhost:8080"), "EventGate base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "path to the stored scanner session")
	interval := flag.Duration("interval", 30*time.Second, "revalidation interval for watch")
	flag.Parse()

	lg, err := logger.InitLogger("slog", "EventGateScanner", "cli", logger.WithLevel(logger.InfoLevel))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	client := scanclient.NewClient(*server, nil, scanclient.NewFileStore(*sessionPath), lg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, *interval, flag.Args()); err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			fmt.Fprintln(os.Stderr, "access denied, enter the event and terminal codes again")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, client *scanclient.Client, interval time.Duration, args []string) error {
	if len(args) == 0 {
		return errors.New("expected a command: login, scan, watch or logout")
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <eventCode> <terminalCode>")
		}
		s, err := client.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("terminal %q ready for %q\n", s.TerminalName, s.EventName)

	case "scan":
		if len(args) < 2 {
			return errors.New("usage: scan <guestCode>...")
		}
		for _, code := range args[1:] {
			res, err := client.Scan(ctx, code)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\t%s\n", code, res.Result, res.GuestName)
		}

	case "watch":
		s, err := client.Session()
		if err != nil {
			return err
		}
		fmt.Printf("watching terminal %q for %q, every %s\n", s.TerminalName, s.EventName, interval)
		return client.Revalidate(ctx, interval)

	case "logout":
		return client.Invalidate()

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "eventgate-session.json"
	}
	return filepath.Join(dir, "eventgate", "session.json")
}
