// notesctl provisions the first admin user for an organization directly
// through the store. The API cannot do this itself: user creation
// requires an existing admin in the tenant.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"notesd/internal/config"
	"notesd/internal/domain"
	"notesd/internal/infra/db"
)

func main() {
	var (
		orgID = flag.String("org", "", "organization id (24-char hex)")
		email = flag.String("email", "", "admin email")
		name  = flag.String("name", "", "admin display name")
		role  = flag.String("role", "admin", "role: reader, writer or admin")
		force = flag.Bool("force", false, "create even if the organization already has users")
	)
	flag.Parse()

	if *orgID == "" || *email == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !domain.ValidID(*orgID) {
		log.Fatalf("org id %q is not a 24-char hex identifier", *orgID)
	}
	parsedRole, err := domain.ParseRole(*role)
	if err != nil {
		log.Fatalf("invalid role: %v", err)
	}

	cfg := config.FromEnv()
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is required")
	}
	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orgs := db.NewOrganizationRepository(store.DB)
	users := db.NewUserRepository(store.DB)

	org, err := orgs.GetByID(ctx, *orgID)
	if err != nil {
		log.Fatalf("organization %s: %v", *orgID, err)
	}

	count, err := users.CountByOrganization(ctx, *orgID)
	if err != nil {
		log.Fatalf("count users: %v", err)
	}
	if count > 0 && !*force {
		log.Fatalf("organization %q already has %d user(s); use -force to add another", org.Name, count)
	}

	id, err := domain.NewID()
	if err != nil {
		log.Fatalf("generate id: %v", err)
	}
	user := domain.User{
		ID:             id,
		OrganizationID: *orgID,
		Email:          *email,
		Name:           *name,
		Role:           parsedRole,
		CreatedAt:      time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created %s user %s (%s) in organization %q\n", user.Role, user.ID, user.Email, org.Name)
}
