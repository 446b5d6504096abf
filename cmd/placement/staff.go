package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/internal/lifecycle"
	"github.com/campus-hub/placement-hub/internal/query"
)

func (a *appContext) staffMenu(ctx context.Context, u *user.User) error {
	settings := query.NewFilterSettings()

	for {
		fmt.Println("\n--- CAREER CENTRE STAFF MENU ---")
		fmt.Println("1. All internships")
		fmt.Println("2. Set filters")
		fmt.Println("3. Review pending internships")
		fmt.Println("4. Review representative accounts")
		fmt.Println("5. Review withdrawal requests")
		fmt.Println("6. Creation report")
		fmt.Println("7. Change password")
		fmt.Println("0. Logout")

		var err error
		switch a.prompt("Choice: ") {
		case "1":
			err = a.viewInternships(ctx, u, settings)
		case "2":
			a.editFilters(&settings)
		case "3":
			err = a.reviewInternships(ctx)
		case "4":
			err = a.reviewRepresentatives(ctx)
		case "5":
			err = a.reviewWithdrawals(ctx)
		case "6":
			err = a.creationReport(ctx)
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

func (a *appContext) reviewInternships(ctx context.Context) error {
	pending, err := a.internships.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("No internships awaiting review.")
		return nil
	}
	fmt.Println("\n--- PENDING INTERNSHIPS ---")
	for _, i := range pending {
		printInternship(i)
	}

	id := a.prompt("Internship ID (blank to go back): ")
	if id == "" {
		return nil
	}
	switch a.prompt("Decision (approve/reject): ") {
	case "approve":
		if err := a.internships.Approve(ctx, id); err != nil {
			return err
		}
		fmt.Println("Internship approved.")
	case "reject":
		if err := a.internships.Reject(ctx, id); err != nil {
			return err
		}
		fmt.Println("Internship rejected.")
	}
	return nil
}

func (a *appContext) reviewRepresentatives(ctx context.Context) error {
	pending, err := a.authenticator.PendingRepresentatives(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("No representative accounts awaiting review.")
		return nil
	}
	fmt.Println("\n--- PENDING REPRESENTATIVE ACCOUNTS ---")
	for _, rep := range pending {
		fmt.Printf("[%s] %s (%s) - %s\n", rep.ID, rep.Name, rep.Email, rep.Representative.CompanyName)
	}

	id := a.prompt("Account ID (blank to go back): ")
	if id == "" {
		return nil
	}
	switch a.prompt("Decision (approve/reject): ") {
	case "approve":
		if err := a.authenticator.ApproveRepresentative(ctx, id); err != nil {
			return err
		}
		fmt.Println("Account approved.")
	case "reject":
		if err := a.authenticator.RejectRepresentative(ctx, id); err != nil {
			return err
		}
		fmt.Println("Account rejected.")
	}
	return nil
}

func (a *appContext) reviewWithdrawals(ctx context.Context) error {
	pending, err := a.applications.PendingWithdrawals(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("No withdrawal requests awaiting review.")
		return nil
	}
	fmt.Println("\n--- PENDING WITHDRAWALS ---")
	for _, ap := range pending {
		printApplication(ap)
	}

	id := a.prompt("Application ID (blank to go back): ")
	if id == "" {
		return nil
	}
	switch a.prompt("Decision (approve/reject): ") {
	case "approve":
		if err := a.applications.ApproveWithdrawal(ctx, id); err != nil {
			return err
		}
		fmt.Println("Withdrawal approved.")
	case "reject":
		if err := a.applications.RejectWithdrawal(ctx, id); err != nil {
			return err
		}
		fmt.Println("Withdrawal rejected; application returned to pending.")
	}
	return nil
}

func (a *appContext) creationReport(ctx context.Context) error {
	var filter lifecycle.ReportFilter
	if s := strings.ToUpper(a.prompt("Status filter (blank=any): ")); s != "" {
		if status, err := internship.ParseStatus(s); err == nil {
			filter.Status = &status
		}
	}
	filter.Major = a.prompt("Major filter (blank=any): ")
	if l := a.prompt("Level filter (blank=any): "); l != "" {
		level := internship.ParseLevel(l)
		filter.Level = &level
	}

	report, err := a.internships.Report(ctx, filter)
	if err != nil {
		return err
	}
	if report.Total == 0 {
		fmt.Println("No internships match the given filters.")
		return nil
	}

	fmt.Println("\n=== INTERNSHIP CREATION REPORT ===")
	fmt.Printf("%-8s %-25s %-15s %-12s %-12s %-12s %-10s %-8s %-8s\n",
		"ID", "Title", "Company", "CreatedBy", "Level", "Status", "Major", "Slots", "Visible")
	for _, i := range report.Rows {
		visible := "No"
		if i.Visible {
			visible = "Yes"
		}
		fmt.Printf("%-8s %-25s %-15s %-12s %-12s %-12s %-10s %d/%-6d %-8s\n",
			i.ID, i.Title, i.CompanyName, i.RepresentativeID, i.Level, i.Status,
			i.PreferredMajor, i.SlotsLeft, i.TotalSlots, visible)
	}
	fmt.Println("\n--- SUMMARY ---")
	fmt.Printf("Total Internships: %d\n", report.Total)
	fmt.Printf("Approved: %d | Pending: %d | Rejected: %d\n", report.Approved, report.Pending, report.Rejected)
	return nil
}
