// Command promote grants the reviewer or admin role to an employee by
// employee number. It is used to bootstrap the first reviewers and admins,
// acting under a fixed system identity that is recorded in the audit log.
//
// Usage:
//
//	promote --employee-number=EMP001 [--role=admin]
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/app"
	"github.com/heartmarshall/kaizen-backend/internal/config"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/employee"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// systemCallerID identifies bootstrap changes in the audit log.
var systemCallerID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("kaizen.bootstrap"))

func main() {
	number := flag.String("employee-number", "", "employee number to promote")
	role := flag.String("role", string(domain.RoleAdmin), "role to grant (reviewer|admin)")
	flag.Parse()

	if *number == "" || (*role != string(domain.RoleAdmin) && *role != string(domain.RoleReviewer)) {
		fmt.Fprintln(os.Stderr, "Usage: promote --employee-number=EMP001 [--role=reviewer|admin]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := promote(cfg, *number, domain.Role(*role)); err != nil {
		fmt.Fprintf(os.Stderr, "promote %s: %v\n", *number, err)
		os.Exit(1)
	}
}

func promote(cfg *config.Config, number string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rt, err := app.Open(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer rt.Close(context.Background())

	ctx = ctxutil.WithIdentity(ctx, ctxutil.Identity{
		CallerID:       systemCallerID,
		EmployeeNumber: "SYSTEM",
		Role:           string(domain.RoleAdmin),
	})

	employees := rt.Services.Employees

	target, err := employees.GetByNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("lookup employee: %w", err)
	}

	if target.Role == role {
		fmt.Printf("Employee %q is already %s.\n", number, role)
		return nil
	}

	if _, err := employees.SetRole(ctx, employee.SetRoleInput{EmployeeID: target.ID, Role: role}); err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	rt.Logger.Info("employee promoted", slog.String("employee_number", number), slog.String("role", string(role)))
	fmt.Printf("Employee %q promoted to %s.\n", number, role)
	return nil
}
