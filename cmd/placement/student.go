package main

import (
	"context"
	"fmt"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/internal/query"
)

func (a *appContext) studentMenu(ctx context.Context, u *user.User) error {
	actor, err := user.StudentActorOf(u)
	if err != nil {
		return err
	}
	settings := query.NewFilterSettings()

	for {
		fmt.Println("\n--- STUDENT MENU ---")
		fmt.Println("1. View internships")
		fmt.Println("2. Set filters")
		fmt.Println("3. Apply for internship")
		fmt.Println("4. My applications")
		fmt.Println("5. Accept an offer")
		fmt.Println("6. Request withdrawal")
		fmt.Println("7. Change password")
		fmt.Println("0. Logout")

		var err error
		switch a.prompt("Choice: ") {
		case "1":
			err = a.viewInternships(ctx, u, settings)
		case "2":
			a.editFilters(&settings)
		case "3":
			err = a.applyForInternship(ctx, actor)
		case "4":
			err = a.showMyApplications(ctx, actor.ID)
		case "5":
			err = a.acceptOffer(ctx, actor.ID)
		case "6":
			err = a.requestWithdrawal(ctx, actor.ID)
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

func (a *appContext) viewInternships(ctx context.Context, u *user.User, settings query.FilterSettings) error {
	all, err := a.internships.All(ctx)
	if err != nil {
		return err
	}
	view := query.FilteredView(all, settings, u)
	if len(view) == 0 {
		fmt.Println("No internships available for your criteria.")
		return nil
	}
	fmt.Println("\n--- AVAILABLE INTERNSHIPS ---")
	if settings.IsActive() {
		fmt.Println("Showing filtered results. Use 'Set filters' to modify or clear.")
	}
	for _, i := range view {
		if u.IsStudent() {
			printInternshipDetail(i)
		} else {
			printInternship(i)
		}
	}
	return nil
}

func (a *appContext) applyForInternship(ctx context.Context, actor user.StudentActor) error {
	id := a.prompt("Internship ID: ")
	created, err := a.applications.Apply(ctx, actor, id)
	if err != nil {
		return err
	}
	fmt.Printf("Application %s submitted.\n", created.ID)
	return nil
}

func (a *appContext) showMyApplications(ctx context.Context, studentID string) error {
	apps, err := a.applications.ByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("You have no applications yet.")
		return nil
	}
	fmt.Println("\n--- YOUR APPLICATIONS ---")
	for _, ap := range apps {
		printApplication(ap)
	}
	return nil
}

func (a *appContext) acceptOffer(ctx context.Context, studentID string) error {
	ok, err := a.applications.HasSuccessfulOffer(ctx, studentID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("You have no successful offers to accept.")
		return nil
	}
	id := a.prompt("Application ID to accept: ")
	if err := a.applications.AcceptOffer(ctx, studentID, id); err != nil {
		return err
	}
	fmt.Println("Offer accepted. Your other active applications were withdrawn.")
	return nil
}

func (a *appContext) requestWithdrawal(ctx context.Context, studentID string) error {
	withdrawable, err := a.applications.Withdrawable(ctx, studentID)
	if err != nil {
		return err
	}
	if len(withdrawable) == 0 {
		fmt.Println("You have no pending applications to withdraw.")
		return nil
	}
	fmt.Println("\n--- WITHDRAWABLE APPLICATIONS ---")
	for _, ap := range withdrawable {
		printApplication(ap)
	}
	id := a.prompt("Application ID to withdraw: ")
	if err := a.applications.Withdraw(ctx, studentID, id); err != nil {
		return err
	}
	fmt.Println("Withdrawal request submitted. Awaiting staff approval.")
	return nil
}

func (a *appContext) changePassword(ctx context.Context, u *user.User) {
	oldPw := a.prompt("Current password: ")
	newPw := a.prompt("New password: ")
	if confirm := a.prompt("Confirm new password: "); confirm != newPw {
		fmt.Println("New passwords do not match.")
		return
	}
	if err := a.authenticator.ChangePassword(ctx, u, oldPw, newPw); err != nil {
		a.report(err)
		return
	}
	fmt.Println("Password updated.")
}
