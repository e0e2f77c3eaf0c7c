// Package seed loads the demo dataset the console ships with. The store is
// backend-less, so without a seed a fresh process would have no account to
// log in with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Load inserts the demo roster: three users, two teams, three clients, and
// four tasks. Ids are short and stable on purpose so the dataset is easy
// to reference from the UI and from docs.
func Load(ctx context.Context, store *memory.Store) error {
	now := time.Now().UTC()

	users := []domain.User{
		{
			ID: "u1", Name: "Diretoria Corvo", Email: "admin@corvomarketing.com",
			Role: domain.RoleAdmin, Title: "Diretor",
			AvatarURL: "https://ui-avatars.com/api/?name=Diretoria+Corvo&background=312e81&color=fff",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u2", Name: "Gerente de Contas", Email: "atendimento@corvomarketing.com",
			Role: domain.RoleUser, Title: "Gerente de Contas", TeamID: "team1",
			AvatarURL: "https://ui-avatars.com/api/?name=Gerente+Contas&background=6366f1&color=fff",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u3", Name: "Redator Sênior", Email: "redacao@corvomarketing.com",
			Role: domain.RoleUser, Title: "Redator", TeamID: "team2",
			AvatarURL: "https://ui-avatars.com/api/?name=Redator+Senior&background=6366f1&color=fff",
			CreatedAt: now, UpdatedAt: now,
		},
	}

	teams := []domain.Team{
		{
			ID: "team1", Name: "Performance & Ads",
			Description: "Equipe responsável por tráfego pago e métricas.",
			MemberIDs:   []string{"u2"},
		},
		{
			ID: "team2", Name: "Conteúdo & Criativo",
			Description: "Redação, Design e Social Media.",
			MemberIDs:   []string{"u3"},
		},
	}

	clients := []domain.Client{
		{
			ID: "c1", Name: "Grupo TechSolutions", CompanyName: "TechSolutions Ltda",
			Phone: "(11) 99999-1010", Area: "Tecnologia",
			Status: domain.ClientActive, MonthlyFee: dec("5500"),
			Briefing:          "Objetivo: Aumentar leads B2B via LinkedIn Ads. Linguagem corporativa, sóbria.",
			AccessCredentials: "LinkedIn: social@techsolutions / SenhaSegura123",
			ContractRef:       "contracts/c1/contract.pdf",
			AssignedUserIDs:   []string{"u2"},
			ManagerID:         "u2", TeamID: "team1",
			Commissions: []domain.Commission{{UserID: "u2", Percentage: dec("10")}},
			Notes:       "Cliente prefere reuniões às terças-feiras.",
			Files:       []domain.ClientFile{},
		},
		{
			ID: "c2", Name: "Bistrô La Vie", CompanyName: "La Vie Gastronomia",
			Phone: "(21) 98888-2020", Area: "Gastronomia",
			Status: domain.ClientActive, MonthlyFee: dec("2200"),
			Briefing:          "Objetivo: Tráfego local para almoço executivo. Reels diários mostrando os pratos.",
			AccessCredentials: "Instagram: @bistrolavie / Croissant2024",
			ContractRef:       "contracts/c2/contract.pdf",
			AssignedUserIDs:   []string{"u3"},
			ManagerID:         "u3", TeamID: "team2",
			Commissions: []domain.Commission{{UserID: "u3", Percentage: dec("15")}},
			Notes:       "Focar em fotos de pratos iluminados.",
			Files:       []domain.ClientFile{},
		},
		{
			ID: "c3", Name: "Advocacia Mendes", CompanyName: "Mendes Associados",
			Phone: "(31) 97777-3030", Area: "Jurídico",
			Status: domain.ClientInactive, MonthlyFee: dec("4000"),
			Briefing:        "Reformulação de identidade visual e site institucional.",
			AssignedUserIDs: []string{"u1"},
			ManagerID:       "u1",
			Commissions:     []domain.Commission{{UserID: "u2", Percentage: dec("50")}},
			Notes:           "Contrato suspenso temporariamente.",
			Files:           []domain.ClientFile{},
		},
	}

	month := now.Format("2006-01")
	tasks := []domain.Task{
		{
			ID: "t1", Title: "Planejamento Editorial: Mês das Mães",
			Description:      "Criar 12 posts para o feed e 20 stories cobrindo a campanha.",
			Status:           domain.TaskPending,
			ClientID:         "c2", AssignedToUserID: "u3", CreatedByUserID: "u1",
			DueDate: month + "-15",
			Comments: []domain.TaskComment{{
				ID: "cm1", UserID: "u1", UserName: "Diretoria Corvo",
				Text: "Lembre de usar as cores da paleta nova.", CreatedAt: now,
			}},
		},
		{
			ID: "t2", Title: "Revisão de Artigo: Cloud Computing",
			Description: "Revisar gramática e SEO do artigo sobre AWS vs Azure.",
			Status:      domain.TaskInProgress,
			ClientID:    "c1", AssignedToUserID: "u2", CreatedByUserID: "u1",
			DueDate:  month + "-20",
			Comments: []domain.TaskComment{},
		},
		{
			ID: "t3", Title: "Assinatura Renovação Contrato",
			Description: "Enviar minuta atualizada para o setor jurídico do cliente.",
			Status:      domain.TaskPending,
			ClientID:    "c3", AssignedToUserID: "u1", CreatedByUserID: "u1",
			DueDate:  month + "-10",
			Comments: []domain.TaskComment{},
		},
		{
			ID: "t4", Title: "Relatório de Campanha: Abril",
			Status:   domain.TaskDone,
			ClientID: "c1", AssignedToUserID: "u2", CreatedByUserID: "u2",
			CompletedAt: month + "-05",
			Comments:    []domain.TaskComment{},
		},
	}

	for i := range users {
		if err := store.Users.Insert(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	for i := range teams {
		if err := store.Teams.Insert(ctx, &teams[i]); err != nil {
			return fmt.Errorf("seed teams: %w", err)
		}
	}
	for i := range clients {
		if err := store.Clients.Insert(ctx, &clients[i]); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}
	for i := range tasks {
		if err := store.Tasks.Insert(ctx, &tasks[i]); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}
	return nil
}
