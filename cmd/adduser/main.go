// Command adduser creates an account through the regular signup pipeline.
//
//	adduser -username alice -email alice@example.com [-d DSN] [-s SECRET]
//
// The password is read from the terminal without echo, or from the first
// line of stdin when stdin is not a terminal.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/staffql/internal/flagx"
	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/config"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffql/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Signer is satisfied by services.AccountService.
type Signer interface {
	Signup(ctx context.Context, in models.SignupInput) *models.Result
}

func main() {
	ctx := context.Background()

	username, email, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager(nil)
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	logger := logging.NewSlogLogger(logging.New(cfg.Env, os.Stderr))
	svc := services.NewAccountService(db, rm, cfg, logger, nil)

	if err := run(ctx, svc, username, email, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseArgs(args []string) (string, string, error) {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-username", "-email"})); err != nil {
		return "", "", err
	}
	if *username == "" || *email == "" {
		return "", "", errors.New("usage: adduser -username NAME -email EMAIL")
	}
	return *username, *email, nil
}

func run(ctx context.Context, svc Signer, username, email string, in *os.File, out io.Writer) error {
	fmt.Fprint(out, "Password: ")
	password, err := readPassword(in)
	fmt.Fprintln(out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	res := svc.Signup(ctx, models.SignupInput{Username: username, Email: email, Password: password})
	if !res.Success {
		for _, fe := range res.Errors {
			fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
		}
		return errors.New(res.Message)
	}

	fmt.Fprintf(out, "%s: %s (%s)\n", res.Message, res.User.Username, res.User.ID)
	return nil
}
