package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/d60-Lab/gin-news/config"
	"github.com/d60-Lab/gin-news/internal/form"
	"github.com/d60-Lab/gin-news/internal/repository"
	"github.com/d60-Lab/gin-news/internal/service"
	"github.com/d60-Lab/gin-news/pkg/database"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	email := fs.String("email", "", "Email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	configPath := fs.String("config", "", "Path to config file (defaults to ./config.yaml)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> -email <email> [-password <password>] [-config <path>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: user, email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	f := form.RegisterForm{Username: *username, Email: *email, Password: password, Confirm: password}
	if errs := form.Validate(f); errs != nil {
		for field, msgs := range errs {
			fmt.Fprintf(stderr, "%s: %s\n", field, strings.Join(msgs, "; "))
		}
		return errors.New("invalid user")
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	svc := service.NewAuthService(repository.NewUserRepository(db))
	user, err := svc.Register(context.Background(), f.Username, f.Email, f.Password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "User %q created (id %d)\n", user.Username, user.ID)
	return nil
}

// readPassword 终端下不回显，否则按行读取
func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
