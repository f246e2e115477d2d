package pool_seeding

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	cp "github.com/jinzhu/copier"
	gorm "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nickandperla.net/pool_seeding/scoring"
)

var ErrRunNotFound = errors.New("search run not found")

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// SearchRun is the stored summary of one solve.
type SearchRun struct {
	ID                   uint
	UUID                 string `gorm:"uniqueIndex"`
	CreatedAt            time.Time
	PoolCount            int
	CompetitorCount      int
	IgnoredRegion        string
	CollisionScore       int
	TargetCollisionScore int
	Generations          int
	Reason               string
	Solved               bool
	ElapsedMs            int64
	Placements           []Placement
	GenerationRecords    []GenerationRecord
}

// Placement is one competitor of a stored seed order.
type Placement struct {
	ID          uint
	SearchRunID uint `gorm:"index"`
	Seed        int
	Pool        int
	Identifier  string
	Region      string
	Rank        int
}

// GenerationRecord stores GenerationMetrics. Fitness is left out since it is
// +Inf for solved generations.
type GenerationRecord struct {
	ID                    uint
	SearchRunID           uint `gorm:"index"`
	Generation            int
	Size                  int
	BestCollisionScore    int
	WorstCollisionScore   int
	AverageCollisionScore float64
	Solved                bool
}

// Competitors returns the stored seed order.
func (r *SearchRun) Competitors() []scoring.Competitor {
	out := make([]scoring.Competitor, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = scoring.Competitor{Identifier: p.Identifier, Region: p.Region, Rank: p.Rank}
	}
	return out
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func (config *PersistenceConfig) dsn() string {
	var query []string
	for _, prag := range config.SQLitePragmas {
		query = append(query, fmt.Sprintf("_pragma=%s", prag))
	}
	query = append(query, config.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if len(query) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(query, "&"))
	}
	return path.String()
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}
	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(
		&SearchRun{},
		&Placement{},
		&GenerationRecord{},
	)
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("Failed to retrieve raw DB: %w", err)
	}
	return sqldb.Close()
}

// NewSearchRun maps a result onto a storable record with a fresh UUID.
func NewSearchRun(result *SearchResult) (*SearchRun, error) {
	run := &SearchRun{}
	if err := cp.Copy(run, result); err != nil {
		return nil, fmt.Errorf("failed to copy search result: %w", err)
	}
	run.UUID = uuid.NewString()
	run.Reason = string(result.Reason)
	run.Solved = result.Solved()
	run.ElapsedMs = result.Elapsed.Milliseconds()

	poolCount := result.PoolCount
	seed := 0
	for c := range result.Best.SeedOrder() {
		run.Placements = append(run.Placements, Placement{
			Seed:       seed,
			Pool:       scoring.PoolIndex(seed, poolCount),
			Identifier: c.Identifier,
			Region:     c.Region,
			Rank:       c.Rank,
		})
		seed++
	}

	if len(result.Metrics) > 0 {
		if err := cp.Copy(&run.GenerationRecords, &result.Metrics); err != nil {
			return nil, fmt.Errorf("failed to copy generation metrics: %w", err)
		}
	}
	return run, nil
}

// SaveRun stores result with its placements and metrics.
func (p *Persistence) SaveRun(result *SearchResult) (*SearchRun, error) {
	if result == nil || result.Best == nil {
		return nil, fmt.Errorf("SearchResult cannot be nil")
	}
	run, err := NewSearchRun(result)
	if err != nil {
		return nil, err
	}
	if res := p.DB.Create(run); res.Error != nil {
		return nil, fmt.Errorf("Failed to call gorm.Create(): %w", res.Error)
	}
	return run, nil
}

// LoadRun loads a run by UUID with placements in seed order.
func (p *Persistence) LoadRun(id string) (*SearchRun, error) {
	run := &SearchRun{}
	res := p.DB.
		Preload("Placements", func(db *gorm.DB) *gorm.DB { return db.Order("seed") }).
		Preload("GenerationRecords", func(db *gorm.DB) *gorm.DB { return db.Order("generation") }).
		Where("uuid = ?", id).
		First(run)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, res.Error
	}
	return run, nil
}

// ListRuns returns the newest runs first, without placements.
func (p *Persistence) ListRuns(limit int) ([]SearchRun, error) {
	var runs []SearchRun
	q := p.DB.Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if res := q.Find(&runs); res.Error != nil {
		return nil, res.Error
	}
	return runs, nil
}

// PruneResult counts what PruneRuns removed, or would remove on a dry run.
type PruneResult struct {
	TotalRuns                int64
	DeletedRuns              int64
	DeletedPlacements        int64
	DeletedGenerationRecords int64
}

// PruneRuns deletes all but the newest keep runs along with their placements
// and generation records.
func (p *Persistence) PruneRuns(keep int, dryRun bool) (*PruneResult, error) {
	if keep < 0 {
		return nil, fmt.Errorf("keep cannot be negative, got %d", keep)
	}
	result := &PruneResult{}
	err := p.DB.Transaction(func(tx *gorm.DB) error {
		if res := tx.Model(&SearchRun{}).Count(&result.TotalRuns); res.Error != nil {
			return res.Error
		}

		var ids []uint
		res := tx.Model(&SearchRun{}).Order("id desc").Pluck("id", &ids)
		if res.Error != nil {
			return res.Error
		}
		if len(ids) <= keep {
			return nil
		}
		ids = ids[keep:]
		result.DeletedRuns = int64(len(ids))

		if dryRun {
			if res := tx.Model(&Placement{}).Where("search_run_id IN ?", ids).Count(&result.DeletedPlacements); res.Error != nil {
				return res.Error
			}
			res := tx.Model(&GenerationRecord{}).Where("search_run_id IN ?", ids).Count(&result.DeletedGenerationRecords)
			return res.Error
		}

		res = tx.Where("search_run_id IN ?", ids).Delete(&Placement{})
		if res.Error != nil {
			return fmt.Errorf("Failed to delete placements: %w", res.Error)
		}
		result.DeletedPlacements = res.RowsAffected

		res = tx.Where("search_run_id IN ?", ids).Delete(&GenerationRecord{})
		if res.Error != nil {
			return fmt.Errorf("Failed to delete generation records: %w", res.Error)
		}
		result.DeletedGenerationRecords = res.RowsAffected

		if res := tx.Delete(&SearchRun{}, ids); res.Error != nil {
			return fmt.Errorf("Failed to delete runs: %w", res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
