package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prept/internal/domain"
	"prept/internal/ports"
	"prept/logging"
)

// SQLiteRepository implements ports.TranscriptRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.TranscriptRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the prept logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PREPT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a transcript repository at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&TranscriptModel{}, &RoundModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Save stores a completed interview transcript with its rounds
func (r *SQLiteRepository) Save(ctx context.Context, transcript *domain.Transcript) error {
	model := toTranscriptModel(transcript)
	rounds := toRoundModels(transcript)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		if len(rounds) > 0 {
			if err := tx.Create(&rounds).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrTranscriptExists
		}
		return fmt.Errorf("failed to save transcript: %w", err)
	}

	logging.Logger.Info("Transcript saved",
		"transcript_id", transcript.ID,
		"position", transcript.Position,
		"rounds", len(transcript.Rounds))
	return nil
}

// Get loads a transcript and its rounds by ID
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Transcript, error) {
	var model TranscriptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	var rounds []RoundModel
	if err := r.db.WithContext(ctx).
		Where("transcript_id = ?", id).
		Order("seq ASC").
		Find(&rounds).Error; err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}

	return toDomainTranscript(model, rounds), nil
}

// List returns all transcripts, most recently completed first, without
// their rounds loaded
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Transcript, error) {
	var models []TranscriptModel
	if err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}

	transcripts := make([]domain.Transcript, len(models))
	for i, model := range models {
		transcripts[i] = *toDomainTranscript(model, nil)
	}
	return transcripts, nil
}

// Delete removes a transcript and its rounds
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transcript_id = ?", id).Delete(&RoundModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete rounds: %w", err)
		}

		result := tx.Delete(&TranscriptModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete transcript: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrTranscriptNotFound
		}
		return nil
	})
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// isUniqueConstraintError checks for sqlite unique constraint violations
func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
