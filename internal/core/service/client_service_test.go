package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
)

var (
	adminCaller = ports.Caller{UserID: "admin", Role: domain.RoleAdmin}
	anaCaller   = ports.Caller{UserID: "ana", Role: domain.RoleUser}
	ruiCaller   = ports.Caller{UserID: "rui", Role: domain.RoleUser}
)

func newClientFixture(t *testing.T) (*ClientService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	clients := []domain.Client{
		{ID: "c1", Name: "Padaria Azul", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			AssignedUserIDs: []string{"ana"}},
		{ID: "c2", Name: "Oficina Verde", Status: domain.ClientActive, MonthlyFee: dec("500"),
			ManagerID: "rui"},
	}
	for i := range clients {
		if err := store.Clients.Insert(ctx, &clients[i]); err != nil {
			t.Fatalf("insert client: %v", err)
		}
	}
	return NewClientService(store.Clients, zerolog.Nop()), store
}

func TestClientService_ListScopesToVisibility(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	all, err := svc.List(ctx, adminCaller)
	if err != nil || len(all) != 2 {
		t.Fatalf("admin list: %v, %d clients", err, len(all))
	}

	mine, err := svc.List(ctx, anaCaller)
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "c1" {
		t.Fatalf("ana should see only c1, got %+v", mine)
	}

	managed, err := svc.List(ctx, ruiCaller)
	if err != nil {
		t.Fatalf("manager list: %v", err)
	}
	if len(managed) != 1 || managed[0].ID != "c2" {
		t.Fatalf("rui should see only c2, got %+v", managed)
	}
}

func TestClientService_GetForbiddenOutsideScope(t *testing.T) {
	svc, _ := newClientFixture(t)

	if _, err := svc.Get(context.Background(), anaCaller, "c2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClientService_CreateAdminOnly(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	in := ports.ClientInput{Name: "Novo", Status: domain.ClientActive, MonthlyFee: dec("750")}

	if _, err := svc.Create(ctx, anaCaller, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin create must fail, got %v", err)
	}

	created, err := svc.Create(ctx, adminCaller, in)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created client has no id")
	}
}

func TestClientService_CreateRejectsBadCommissions(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	negative := ports.ClientInput{Name: "X", Status: domain.ClientActive,
		Commissions: []ports.CommissionInput{{UserID: "ana", Percentage: dec("-5")}}}
	if _, err := svc.Create(ctx, adminCaller, negative); !errors.Is(err, domain.ErrInvalidCommission) {
		t.Fatalf("negative percentage must fail, got %v", err)
	}

	duplicate := ports.ClientInput{Name: "X", Status: domain.ClientActive,
		Commissions: []ports.CommissionInput{
			{UserID: "ana", Percentage: dec("10")},
			{UserID: "ana", Percentage: dec("20")},
		}}
	if _, err := svc.Create(ctx, adminCaller, duplicate); !errors.Is(err, domain.ErrInvalidCommission) {
		t.Fatalf("duplicate user must fail, got %v", err)
	}

	// Above 100 is not an error.
	generous := ports.ClientInput{Name: "X", Status: domain.ClientActive,
		Commissions: []ports.CommissionInput{{UserID: "ana", Percentage: dec("150")}}}
	if _, err := svc.Create(ctx, adminCaller, generous); err != nil {
		t.Fatalf("percentage above 100 must pass, got %v", err)
	}
}

func TestClientService_UpdateOpenToAssignee(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, anaCaller, "c1", ports.ClientInput{
		Name:            "Padaria Azul",
		Status:          domain.ClientActive,
		MonthlyFee:      dec("1000"),
		Briefing:        "Focar em redes sociais.",
		AssignedUserIDs: []string{"ana"},
	})
	if err != nil {
		t.Fatalf("assignee update: %v", err)
	}
	if updated.Briefing != "Focar em redes sociais." {
		t.Fatalf("briefing not updated: %q", updated.Briefing)
	}
}

func TestClientService_UpdateSanitizesBriefing(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, adminCaller, "c1", ports.ClientInput{
		Name:     "Padaria Azul",
		Status:   domain.ClientActive,
		Briefing: `<script>alert(1)</script><b>ok</b>`,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if strings.Contains(updated.Briefing, "script") {
		t.Fatalf("script tag survived sanitization: %q", updated.Briefing)
	}
	if !strings.Contains(updated.Briefing, "<b>ok</b>") {
		t.Fatalf("benign markup stripped: %q", updated.Briefing)
	}
}

func TestClientService_DeleteAdminOnly(t *testing.T) {
	svc, store := newClientFixture(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, anaCaller, "c1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin delete must fail, got %v", err)
	}
	if err := svc.Delete(ctx, adminCaller, "c1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := store.Clients.FindByID(ctx, "c1"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("client should be gone, got %v", err)
	}
	if err := svc.Delete(ctx, adminCaller, "c1"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("double delete should report not found, got %v", err)
	}
}

func TestClientService_ContractLifecycle(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	up := ports.FileUpload{Filename: "contrato.pdf", ContentType: "application/pdf", SizeBytes: 2048}
	client, err := svc.UploadContract(ctx, anaCaller, "c1", up)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if client.ContractRef != "contracts/c1/contrato.pdf" {
		t.Fatalf("unexpected contract ref: %q", client.ContractRef)
	}

	client, err = svc.DeleteContract(ctx, anaCaller, "c1")
	if err != nil {
		t.Fatalf("delete contract: %v", err)
	}
	if client.ContractRef != "" {
		t.Fatalf("contract ref should be cleared, got %q", client.ContractRef)
	}
}

func TestClientService_AttachAndListFiles(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return fixed })

	file, err := svc.AttachFile(ctx, anaCaller, "c1", ports.FileUpload{
		Filename:    "logo.png",
		ContentType: "image/png",
		SizeBytes:   512,
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if file.ID == "" || file.StorageRef != "files/c1/logo.png" {
		t.Fatalf("unexpected file record: %+v", file)
	}
	if file.UploadedBy != "ana" || !file.UploadedAt.Equal(fixed) {
		t.Fatalf("upload metadata wrong: %+v", file)
	}

	files, err := svc.ListFiles(ctx, anaCaller, "c1")
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(files) != 1 || files[0].Filename != "logo.png" {
		t.Fatalf("unexpected file list: %+v", files)
	}

	if _, err := svc.ListFiles(ctx, ruiCaller, "c1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("outsider must not list files, got %v", err)
	}
}
