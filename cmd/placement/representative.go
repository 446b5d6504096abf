package main

import (
	"context"
	"fmt"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/internal/query"
)

func (a *appContext) representativeMenu(ctx context.Context, u *user.User) error {
	settings := query.NewFilterSettings()

	for {
		fmt.Println("\n--- COMPANY REPRESENTATIVE MENU ---")
		fmt.Println("1. My internships")
		fmt.Println("2. Set filters")
		fmt.Println("3. Create internship")
		fmt.Println("4. Edit internship")
		fmt.Println("5. Toggle visibility")
		fmt.Println("6. Review applications")
		fmt.Println("7. Change password")
		fmt.Println("0. Logout")

		var err error
		switch a.prompt("Choice: ") {
		case "1":
			err = a.viewInternships(ctx, u, settings)
		case "2":
			a.editFilters(&settings)
		case "3":
			err = a.createInternship(ctx, u)
		case "4":
			err = a.editInternship(ctx, u.ID)
		case "5":
			err = a.toggleVisibility(ctx, u.ID)
		case "6":
			err = a.reviewApplications(ctx, u.ID)
		case "7":
			a.changePassword(ctx, u)
		case "0":
			return nil
		}
		if err != nil {
			if shared.IsFatal(err) {
				return err
			}
			a.report(err)
		}
	}
}

func (a *appContext) createInternship(ctx context.Context, u *user.User) error {
	company := ""
	if u.Representative != nil {
		company = u.Representative.CompanyName
	}
	created, err := a.internships.Create(ctx, u.ID, company, a.promptDraft())
	if err != nil {
		return err
	}
	fmt.Printf("Internship created: %s (pending staff approval)\n", created.ID)
	return nil
}

func (a *appContext) editInternship(ctx context.Context, repID string) error {
	id := a.prompt("Internship ID: ")
	if err := a.internships.Edit(ctx, id, repID, a.promptDraft()); err != nil {
		return err
	}
	fmt.Printf("Internship %s updated.\n", id)
	return nil
}

func (a *appContext) toggleVisibility(ctx context.Context, repID string) error {
	id := a.prompt("Internship ID: ")
	visible := a.prompt("Visibility (on/off): ") == "on"
	if err := a.internships.ToggleVisibility(ctx, id, repID, visible); err != nil {
		return err
	}
	fmt.Println("Visibility updated.")
	return nil
}

func (a *appContext) reviewApplications(ctx context.Context, repID string) error {
	pending, err := a.applications.PendingForRepresentative(ctx, repID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("No pending applications.")
		return nil
	}
	fmt.Println("\n--- PENDING APPLICATIONS ---")
	for _, ap := range pending {
		printApplication(ap)
	}

	id := a.prompt("Application ID (blank to go back): ")
	if id == "" {
		return nil
	}
	switch a.prompt("Decision (approve/reject): ") {
	case "approve":
		if err := a.applications.ApproveApplication(ctx, id); err != nil {
			return err
		}
		fmt.Println("Application marked successful.")
	case "reject":
		if err := a.applications.RejectApplication(ctx, id); err != nil {
			return err
		}
		fmt.Println("Application marked unsuccessful.")
	}
	return nil
}
