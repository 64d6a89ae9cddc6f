package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"alumni-jobboard-backend/internal/config"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/storage"
)

type Member struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FullName    string `yaml:"full_name"`
	AccountType string `yaml:"account_type"`
	IDNumber    string `yaml:"id_number"`
	Company     string `yaml:"company"`
	Role        string `yaml:"role"`
	Status      string `yaml:"status"`
}

type Job struct {
	OwnerEmail  string `yaml:"owner_email"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Location    string `yaml:"location"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type SetupData struct {
	Members []Member `yaml:"members"`
	Jobs    []Job    `yaml:"jobs"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	setupFile := flag.String("data", "config/seed.dev.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	setupData, err := readSetupFile(*setupFile)
	if err != nil {
		log.Fatalf("Failed to read setup file: %v", err)
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer backend.Close()

	if err := populateData(ctx, backend, setupData, bcrypt.DefaultCost); err != nil {
		backend.Close()
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data successfully populated", "members", len(setupData.Members), "jobs", len(setupData.Jobs))
}

func readSetupFile(filename string) (*SetupData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var setupData SetupData
	if err := yaml.Unmarshal(data, &setupData); err != nil {
		return nil, err
	}
	return &setupData, nil
}

// populateData writes members with their role and verification status, then
// their postings. Seeded roles are recorded as assigned by the system actor.
func populateData(ctx context.Context, b *storage.Backend, data *SetupData, hashCost int) error {
	owners := make(map[string]string, len(data.Members))

	for i, m := range data.Members {
		logger.Info("Creating member", "index", i+1, "total", len(data.Members), "email", m.Email)

		role := domain.Role(m.Role)
		if role == domain.RoleNone {
			role = domain.RoleAlumni
		}
		if !role.Valid() {
			return fmt.Errorf("member %s: unknown role %q", m.Email, m.Role)
		}
		status := domain.VerificationStatus(m.Status)
		if status == "" {
			status = domain.VerificationPending
		}
		if !status.Valid() {
			return fmt.Errorf("member %s: unknown status %q", m.Email, m.Status)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), hashCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", m.Email, err)
		}

		account := &domain.Account{ID: uuid.NewString(), Email: strings.ToLower(m.Email), PasswordHash: string(hash)}
		if err := b.Accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create account %s: %w", m.Email, err)
		}
		if err := b.Roles.Append(ctx, &domain.RoleAssignment{AccountID: account.ID, Role: role, AssignedBy: domain.SystemActor}); err != nil {
			return fmt.Errorf("failed to assign role to %s: %w", m.Email, err)
		}
		if err := b.Verifications.Create(ctx, &domain.VerificationProfile{
			AccountID:   account.ID,
			Status:      domain.VerificationPending,
			IDNumber:    m.IDNumber,
			AccountType: domain.AccountType(m.AccountType),
			FullName:    m.FullName,
			Company:     m.Company,
		}); err != nil {
			return fmt.Errorf("failed to create profile for %s: %w", m.Email, err)
		}
		if status != domain.VerificationPending {
			if err := b.Verifications.UpdateStatus(ctx, account.ID, status, domain.SystemActor); err != nil {
				return fmt.Errorf("failed to set status for %s: %w", m.Email, err)
			}
		}

		owners[account.Email] = account.ID
		logger.Info("Member created", "accountID", account.ID, "role", role, "status", status)
	}

	for _, j := range data.Jobs {
		ownerID, ok := owners[strings.ToLower(j.OwnerEmail)]
		if !ok {
			return fmt.Errorf("job %q: owner %s is not a seeded member", j.Title, j.OwnerEmail)
		}
		job := &domain.JobPosting{
			OwnerID:     ownerID,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Type:        j.Type,
			Description: j.Description,
			IsActive:    true,
		}
		if err := b.Jobs.Create(ctx, job); err != nil {
			return fmt.Errorf("failed to create job %q: %w", j.Title, err)
		}
		logger.Info("Job created", "jobID", job.ID, "title", job.Title)
	}
	return nil
}
