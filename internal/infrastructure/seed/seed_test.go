package seed

import (
	"context"
	"testing"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
)

func TestLoad(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := Load(ctx, store); err != nil {
		t.Fatalf("load: %v", err)
	}

	counts := store.Counts(ctx)
	if counts["users"] != 3 || counts["teams"] != 2 || counts["clients"] != 3 || counts["tasks"] != 4 {
		t.Fatalf("unexpected counts: %+v", counts)
	}

	// The admin account must exist so a fresh process has a login.
	admin, err := store.Users.FindByEmail(ctx, "admin@corvomarketing.com")
	if err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("admin role = %s", admin.Role)
	}

	// Commission entries reference seeded users.
	c1, err := store.Clients.FindByID(ctx, "c1")
	if err != nil {
		t.Fatalf("c1 missing: %v", err)
	}
	cm, ok := c1.CommissionFor("u2")
	if !ok || !cm.Percentage.Equal(dec("10")) {
		t.Fatalf("c1 commission for u2 wrong: %+v ok=%v", cm, ok)
	}

	// Due dates land in the current month so the dashboard has data out
	// of the box.
	t1, err := store.Tasks.FindByID(ctx, "t1")
	if err != nil {
		t.Fatalf("t1 missing: %v", err)
	}
	if len(t1.DueDate) != len("2006-01-02") {
		t.Fatalf("t1 due date malformed: %q", t1.DueDate)
	}
}
