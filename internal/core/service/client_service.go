package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// ClientService manages client accounts. Create and Delete are admin-only;
// Update is open to anyone who can view the client, because assignees
// maintain the briefing and access credentials day to day.
type ClientService struct {
	clients ports.ClientRepository
	now     func() time.Time
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, now: time.Now, logger: logger}
}

// WithClock replaces the wall clock used for file timestamps.
func (s *ClientService) WithClock(now func() time.Time) *ClientService {
	s.now = now
	return s
}

func (s *ClientService) List(ctx context.Context, caller ports.Caller) ([]domain.Client, error) {
	all, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleAdmin {
		return all, nil
	}
	visible := make([]domain.Client, 0, len(all))
	for _, c := range all {
		if CanViewClient(caller, &c) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (s *ClientService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanViewClient(caller, client) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, caller ports.Caller, in ports.ClientInput) (*domain.Client, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	commissions, err := buildCommissions(in.Commissions)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:                uuid.NewString(),
		Name:              in.Name,
		CompanyName:       in.CompanyName,
		Phone:             in.Phone,
		Area:              in.Area,
		Notes:             sanitizeUGC(in.Notes),
		Status:            in.Status,
		MonthlyFee:        in.MonthlyFee,
		Briefing:          sanitizeUGC(in.Briefing),
		AccessCredentials: in.AccessCredentials,
		AssignedUserIDs:   append([]string(nil), in.AssignedUserIDs...),
		ManagerID:         in.ManagerID,
		TeamID:            in.TeamID,
		Commissions:       commissions,
		Files:             []domain.ClientFile{},
	}
	if err := s.clients.Insert(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Str("name", client.Name).Msg("client created")
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, caller ports.Caller, id string, in ports.ClientInput) (*domain.Client, error) {
	client, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	commissions, err := buildCommissions(in.Commissions)
	if err != nil {
		return nil, err
	}

	client.Name = in.Name
	client.CompanyName = in.CompanyName
	client.Phone = in.Phone
	client.Area = in.Area
	client.Notes = sanitizeUGC(in.Notes)
	client.Status = in.Status
	client.MonthlyFee = in.MonthlyFee
	client.Briefing = sanitizeUGC(in.Briefing)
	client.AccessCredentials = in.AccessCredentials
	client.AssignedUserIDs = append([]string(nil), in.AssignedUserIDs...)
	client.ManagerID = in.ManagerID
	client.TeamID = in.TeamID
	client.Commissions = commissions

	if err := s.clients.Replace(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client. Its tasks keep a dangling client id; the fee
// and commissions disappear from every month's report, past ones included.
func (s *ClientService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !CanViewAdminMetrics(caller) {
		return domain.ErrForbidden
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// UploadContract records contract metadata and points the client at a
// synthetic storage reference. No bytes are kept.
func (s *ClientService) UploadContract(ctx context.Context, caller ports.Caller, clientID string, up ports.FileUpload) (*domain.Client, error) {
	client, err := s.Get(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	client.ContractRef = fmt.Sprintf("contracts/%s/%s", clientID, up.Filename)
	if err := s.clients.Replace(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("client_id", clientID).
		Str("filename", up.Filename).
		Int64("size_bytes", up.SizeBytes).
		Msg("contract uploaded")
	return client, nil
}

func (s *ClientService) DeleteContract(ctx context.Context, caller ports.Caller, clientID string) (*domain.Client, error) {
	client, err := s.Get(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	client.ContractRef = ""
	if err := s.clients.Replace(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// AttachFile appends a file metadata record to the client.
func (s *ClientService) AttachFile(ctx context.Context, caller ports.Caller, clientID string, up ports.FileUpload) (*domain.ClientFile, error) {
	client, err := s.Get(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	file := domain.ClientFile{
		ID:          uuid.NewString(),
		Filename:    up.Filename,
		StorageRef:  fmt.Sprintf("files/%s/%s", clientID, up.Filename),
		ContentType: up.ContentType,
		SizeBytes:   up.SizeBytes,
		UploadedBy:  caller.UserID,
		UploadedAt:  s.now().UTC(),
	}
	client.Files = append(client.Files, file)

	if err := s.clients.Replace(ctx, client); err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *ClientService) ListFiles(ctx context.Context, caller ports.Caller, clientID string) ([]domain.ClientFile, error) {
	client, err := s.Get(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}
	return client.Files, nil
}

// buildCommissions validates and converts the commission list: at most one
// entry per user and no negative percentages. Values above 100 pass
// through; catching them is a form-validation concern upstream.
func buildCommissions(in []ports.CommissionInput) ([]domain.Commission, error) {
	if len(in) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.Commission, 0, len(in))
	for _, cm := range in {
		if cm.Percentage.IsNegative() {
			return nil, fmt.Errorf("%w: percentage for user %s is negative", domain.ErrInvalidCommission, cm.UserID)
		}
		if _, dup := seen[cm.UserID]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for user %s", domain.ErrInvalidCommission, cm.UserID)
		}
		seen[cm.UserID] = struct{}{}
		out = append(out, domain.Commission{UserID: cm.UserID, Percentage: cm.Percentage})
	}
	return out, nil
}
