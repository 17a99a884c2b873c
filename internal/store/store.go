// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists projects and their development state in a sqlite
// database under the workspace root. All state the pipelines write lives
// here, which is what makes every pipeline resumable.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// dbFile is the sqlite database file name under <root>/db/.
const dbFile = "venture-advisor.db"

// deselectWorkers bounds concurrent market deselect updates.
const deselectWorkers = 4

// Store wraps the relational database. A Store is safe for use from a
// single operator session; sqlite serializes writers underneath.
type Store struct {
	db      *gorm.DB
	log     *logging.Logger
	rootDir string
}

// Open creates the workspace database directory if needed, opens the sqlite
// database and migrates the schema.
func Open(cfg types.StoreConfig, log *logging.Logger) (*Store, error) {
	dbDir := filepath.Join(cfg.RootDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dbDir, dbFile)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(
		&Project{},
		&Business{},
		&TargetMarket{},
		&MarketSegment{},
		&BusinessPersona{},
		&Copilot{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	log.Debug("store opened", "path", filepath.Join(dbDir, dbFile))
	return &Store{db: db, log: log, rootDir: cfg.RootDir}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RootDir returns the workspace root the store was opened under. Pipelines
// write report files next to the database.
func (s *Store) RootDir() string {
	return s.rootDir
}

// CreateProject stores a new project, assigning an ID when none is set.
func (s *Store) CreateProject(ctx context.Context, p *Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// ListProjects returns all projects, oldest first.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := s.db.WithContext(ctx).Order("created_at").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// FindProject returns the project with the given ID, or nil when it does
// not exist.
func (s *Store) FindProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding project: %w", err)
	}
	return &p, nil
}

// SaveProject writes the project back.
func (s *Store) SaveProject(ctx context.Context, p *Project) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// UpdateProjectTRL records the project's technology readiness level.
func (s *Store) UpdateProjectTRL(ctx context.Context, id uuid.UUID, trl int) error {
	err := s.db.WithContext(ctx).Model(&Project{}).Where("id = ?", id).Update("trl", trl).Error
	if err != nil {
		return fmt.Errorf("updating project TRL: %w", err)
	}
	return nil
}

// BusinessForProject returns the business development state for a project,
// creating an empty record on first use. The business shares the project's
// ID.
func (s *Store) BusinessForProject(ctx context.Context, projectID uuid.UUID) (*Business, error) {
	var b Business
	err := s.db.WithContext(ctx).First(&b, "id = ?", projectID).Error
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("finding business: %w", err)
	}

	b = Business{ID: projectID}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, fmt.Errorf("creating business: %w", err)
	}
	s.log.Debug("business created", "projectId", projectID)
	return &b, nil
}

// SaveBusiness writes the business back.
func (s *Store) SaveBusiness(ctx context.Context, b *Business) error {
	if err := s.db.WithContext(ctx).Save(b).Error; err != nil {
		return fmt.Errorf("saving business: %w", err)
	}
	return nil
}

// CreateTargetMarkets stores new markets, assigning IDs when none are set.
func (s *Store) CreateTargetMarkets(ctx context.Context, markets []TargetMarket) error {
	if len(markets) == 0 {
		return nil
	}
	for i := range markets {
		if markets[i].ID == uuid.Nil {
			markets[i].ID = uuid.New()
		}
	}
	if err := s.db.WithContext(ctx).Create(&markets).Error; err != nil {
		return fmt.Errorf("creating target markets: %w", err)
	}
	return nil
}

// FindTargetMarket returns the market with the given ID, or nil when it
// does not exist.
func (s *Store) FindTargetMarket(ctx context.Context, id uuid.UUID) (*TargetMarket, error) {
	var m TargetMarket
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding target market: %w", err)
	}
	return &m, nil
}

// ListTargetMarkets returns all markets for a business, oldest first.
func (s *Store) ListTargetMarkets(ctx context.Context, businessID uuid.UUID) ([]TargetMarket, error) {
	var markets []TargetMarket
	err := s.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at").
		Find(&markets).Error
	if err != nil {
		return nil, fmt.Errorf("listing target markets: %w", err)
	}
	return markets, nil
}

// ListSelectedTargetMarkets returns the markets the operator kept selected.
func (s *Store) ListSelectedTargetMarkets(ctx context.Context, businessID uuid.UUID) ([]TargetMarket, error) {
	var markets []TargetMarket
	err := s.db.WithContext(ctx).
		Where("business_id = ? AND selected = ?", businessID, true).
		Order("created_at").
		Find(&markets).Error
	if err != nil {
		return nil, fmt.Errorf("listing selected target markets: %w", err)
	}
	return markets, nil
}

// SaveTargetMarket writes the market back.
func (s *Store) SaveTargetMarket(ctx context.Context, m *TargetMarket) error {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("saving target market: %w", err)
	}
	return nil
}

// DeselectMarkets clears the selected flag on the given markets. Updates
// run concurrently with a bounded worker count; the first failure cancels
// the batch.
func (s *Store) DeselectMarkets(ctx context.Context, ids []uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(deselectWorkers)
	for _, id := range ids {
		g.Go(func() error {
			err := s.db.WithContext(ctx).
				Model(&TargetMarket{}).
				Where("id = ?", id).
				Update("selected", false).Error
			if err != nil {
				return fmt.Errorf("deselecting market %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// CreateSegments stores new market segments, assigning IDs when none are
// set.
func (s *Store) CreateSegments(ctx context.Context, segments []MarketSegment) error {
	if len(segments) == 0 {
		return nil
	}
	for i := range segments {
		if segments[i].ID == uuid.Nil {
			segments[i].ID = uuid.New()
		}
	}
	if err := s.db.WithContext(ctx).Create(&segments).Error; err != nil {
		return fmt.Errorf("creating market segments: %w", err)
	}
	return nil
}

// ListSegments returns the segments of a target market, oldest first.
func (s *Store) ListSegments(ctx context.Context, marketID uuid.UUID) ([]MarketSegment, error) {
	var segments []MarketSegment
	err := s.db.WithContext(ctx).
		Where("target_market_id = ?", marketID).
		Order("created_at").
		Find(&segments).Error
	if err != nil {
		return nil, fmt.Errorf("listing market segments: %w", err)
	}
	return segments, nil
}

// FindSegment returns the segment with the given ID, or nil when it does
// not exist.
func (s *Store) FindSegment(ctx context.Context, id uuid.UUID) (*MarketSegment, error) {
	var seg MarketSegment
	err := s.db.WithContext(ctx).First(&seg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding market segment: %w", err)
	}
	return &seg, nil
}

// PersonaForBusiness returns the business's persona, or nil when it has not
// been generated yet.
func (s *Store) PersonaForBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessPersona, error) {
	var p BusinessPersona
	err := s.db.WithContext(ctx).First(&p, "id = ?", businessID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding business persona: %w", err)
	}
	return &p, nil
}

// SavePersona writes the persona back. The persona shares the business's
// ID.
func (s *Store) SavePersona(ctx context.Context, p *BusinessPersona) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("saving business persona: %w", err)
	}
	return nil
}

// CopilotForProject returns the technology development state for a project,
// creating an empty record with a fresh analysis on first use.
func (s *Store) CopilotForProject(ctx context.Context, projectID uuid.UUID) (*Copilot, error) {
	var c Copilot
	err := s.db.WithContext(ctx).First(&c, "id = ?", projectID).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("finding copilot: %w", err)
	}

	c = Copilot{
		ID:                 projectID,
		PrimaryGoalAnswers: datatypes.NewJSONType(map[string]string{}),
		StatusAnswers:      datatypes.NewJSONType(map[string]string{}),
		CriticalSubGoals:   datatypes.NewJSONType(map[string]string{}),
		MustHaveFeatures:   datatypes.NewJSONType(map[string]string{}),
		NiceToHaveFeatures: datatypes.NewJSONType(map[string]string{}),
		Constraints:        datatypes.NewJSONType(map[string]string{}),
		Analysis:           datatypes.NewJSONType(types.NewAnalysis()),
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("creating copilot: %w", err)
	}
	s.log.Debug("copilot created", "projectId", projectID)
	return &c, nil
}

// SaveCopilot writes the copilot back.
func (s *Store) SaveCopilot(ctx context.Context, c *Copilot) error {
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("saving copilot: %w", err)
	}
	return nil
}
