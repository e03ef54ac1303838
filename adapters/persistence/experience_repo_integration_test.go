package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/internal/domain/profile"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool         *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	testLogger     logger.Logger
	experienceRepo experience.Repository
	profileRepo    profile.Repository
	ownerID        uuid.UUID
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)

	s.ownerID = uuid.New()
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err = s.dbPool.Exec(ctx, query, s.ownerID, "testowner@example.com", "hashedpassword")
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
	_, err = s.dbPool.Exec(ctx, `INSERT INTO profiles (owner_id, email) VALUES ($1, $2)`, s.ownerID, "testowner@example.com")
	if err != nil {
		s.T().Fatalf("Failed to seed profile: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_Insert_And_List() {
	ctx := context.Background()

	first, err := s.experienceRepo.Insert(ctx, s.ownerID, &experience.Experience{
		Position: "Backend Engineer",
		Company:  "Acme",
		Duration: "2021 - 2023",
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, first.ID)

	second, err := s.experienceRepo.Insert(ctx, s.ownerID, &experience.Experience{
		Position: "Staff Engineer",
		Company:  "Initech",
	})
	s.NoError(err)

	items, err := s.experienceRepo.List(ctx, s.ownerID)
	s.NoError(err)
	s.Len(items, 2)
	s.Equal(second.ID, items[0].ID, "newest entry comes first")
	s.Equal(first.ID, items[1].ID)

	s.NoError(s.experienceRepo.Delete(ctx, first.ID, s.ownerID))
	s.NoError(s.experienceRepo.Delete(ctx, second.ID, s.ownerID))
}

func (s *RepoIntegrationTestSuite) Test_Update_UnknownID_IsNotFound() {
	ctx := context.Background()

	_, err := s.experienceRepo.Update(ctx, uuid.New(), s.ownerID, &experience.Experience{
		Position: "Ghost",
	})

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Delete_WrongOwner_IsNotFound() {
	ctx := context.Background()

	created, err := s.experienceRepo.Insert(ctx, s.ownerID, &experience.Experience{Position: "Keep"})
	s.NoError(err)

	err = s.experienceRepo.Delete(ctx, created.ID, uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)

	s.NoError(s.experienceRepo.Delete(ctx, created.ID, s.ownerID))
}

func (s *RepoIntegrationTestSuite) Test_Profile_PartialUpdate() {
	ctx := context.Background()

	name := "Brian Muthui"
	updated, err := s.profileRepo.Update(ctx, s.ownerID, profile.Update{Name: &name})
	s.NoError(err)
	s.Equal(name, updated.Name)
	s.Equal("testowner@example.com", updated.Email, "untouched fields keep stored values")

	resume := "https://res.cloudinary.com/demo/raw/upload/v1/portfolio/resumes/cv.pdf"
	resumePtr := &resume
	updated, err = s.profileRepo.Update(ctx, s.ownerID, profile.Update{ResumeURL: &resumePtr})
	s.NoError(err)
	s.NotNil(updated.ResumeURL)
	s.Equal(resume, *updated.ResumeURL)

	var cleared *string
	updated, err = s.profileRepo.Update(ctx, s.ownerID, profile.Update{ResumeURL: &cleared})
	s.NoError(err)
	s.Nil(updated.ResumeURL, "explicit null clears the resume")
}

func (s *RepoIntegrationTestSuite) Test_Profile_GetFirst() {
	ctx := context.Background()

	p, err := s.profileRepo.GetFirst(ctx)
	s.NoError(err)
	s.NotNil(p)
	s.Equal(s.ownerID, p.OwnerID)
}
