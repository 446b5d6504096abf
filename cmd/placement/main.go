// Command placement runs the internship placement hub console.
//
// The binary is a thin shell: all lifecycle and eligibility decisions
// live in the core packages; this layer only reads input, calls one
// core operation per user action, and formats the outcome.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/campus-hub/placement-hub/config"
	"github.com/campus-hub/placement-hub/internal/auth"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/infrastructure/persistence/csvstore"
	"github.com/campus-hub/placement-hub/internal/lifecycle"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

// appContext wires every component once at startup and is passed by
// reference into the menus. No ambient singletons.
type appContext struct {
	cfg           *config.Config
	log           *logger.Logger
	authenticator *auth.Authenticator
	internships   *lifecycle.InternshipManager
	applications  *lifecycle.ApplicationManager
	in            *bufio.Scanner
}

func run() error {
	cfg := config.Load()
	log := logger.New(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	defaultHash, err := auth.HashPassword(cfg.DefaultPassword)
	if err != nil {
		return err
	}

	users, err := csvstore.OpenUserStore(cfg.StudentsFile, cfg.RepresentativesFile, cfg.StaffFile, defaultHash, log)
	if err != nil {
		return err
	}
	internshipStore, err := csvstore.OpenInternshipStore(cfg.InternshipsFile, log)
	if err != nil {
		return err
	}
	applicationStore, err := csvstore.OpenApplicationStore(cfg.ApplicationsFile, log)
	if err != nil {
		return err
	}

	internships, err := lifecycle.NewInternshipManager(ctx, internshipStore, log, cfg.MaxPostingsPerRep)
	if err != nil {
		return err
	}
	applications, err := lifecycle.NewApplicationManager(ctx, applicationStore, internships, log, cfg.MaxActiveApplications)
	if err != nil {
		return err
	}

	app := &appContext{
		cfg:           cfg,
		log:           log,
		authenticator: auth.New(users, log),
		internships:   internships,
		applications:  applications,
		in:            bufio.NewScanner(os.Stdin),
	}
	return app.mainLoop(ctx)
}

func (app *appContext) mainLoop(ctx context.Context) error {
	for {
		fmt.Println("\n=== INTERNSHIP PLACEMENT HUB ===")
		fmt.Println("1. Login")
		fmt.Println("2. Register as company representative")
		fmt.Println("0. Exit")

		switch app.prompt("Choice: ") {
		case "1":
			if err := app.login(ctx); err != nil {
				return err
			}
		case "2":
			app.registerRepresentative(ctx)
		case "0":
			return nil
		}
	}
}

func (app *appContext) login(ctx context.Context) error {
	idOrEmail := app.prompt("User ID or email: ")
	password := app.prompt("Password: ")

	u, err := app.authenticator.Login(ctx, idOrEmail, password)
	if err != nil {
		if shared.IsFatal(err) {
			return err
		}
		app.report(err)
		return nil
	}
	fmt.Printf("Welcome, %s!\n", u.Name)

	var sessionErr error
	switch {
	case u.IsStudent():
		sessionErr = app.studentMenu(ctx, u)
	case u.IsRepresentative():
		sessionErr = app.representativeMenu(ctx, u)
	case u.IsStaff():
		sessionErr = app.staffMenu(ctx, u)
	}
	return sessionErr
}

func (app *appContext) registerRepresentative(ctx context.Context) {
	name := app.prompt("Full name: ")
	email := app.prompt("Company email: ")
	password := app.prompt("Password: ")
	company := app.prompt("Company name: ")
	department := app.prompt("Department: ")
	position := app.prompt("Position: ")

	u, err := app.authenticator.RegisterRepresentative(ctx, name, email, password, company, department, position)
	if err != nil {
		app.report(err)
		return
	}
	fmt.Printf("Registered %s. Your account awaits staff approval.\n", u.ID)
}

// prompt prints the label and reads one trimmed line.
func (app *appContext) prompt(label string) string {
	fmt.Print(label)
	if !app.in.Scan() {
		return ""
	}
	return strings.TrimSpace(app.in.Text())
}

// report prints a recoverable domain error for the user.
func (app *appContext) report(err error) {
	fmt.Println("✗", err)
}
