package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type projectRecord struct {
	ID                 uuid.UUID             `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectTitle       string                `gorm:"column:project_title;size:200"`
	ProjectDescription string                `gorm:"column:project_description;size:10000"`
	PubDate            time.Time             `gorm:"column:pub_date"`
	Choices            []projectChoiceRecord `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (projectRecord) TableName() string { return "projects" }

type projectChoiceRecord struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID            uuid.UUID `gorm:"column:project_id;type:uuid;index"`
	CommenterName        string    `gorm:"column:commenter_name;size:20"`
	CommenterDescription string    `gorm:"column:commenter_description;size:200"`
	CreatedAt            time.Time `gorm:"column:created_at"`
}

func (projectChoiceRecord) TableName() string { return "project_choices" }

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ports.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	rec := projectRecord{
		ProjectTitle:       project.ProjectTitle,
		ProjectDescription: project.ProjectDescription,
		PubDate:            project.PubDate,
	}
	if err := r.db.WithContext(ctx).Omit("Choices").Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	project.ID = rec.ID
	return nil
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	var recs []projectRecord
	err := r.db.WithContext(ctx).Order("pub_date DESC, id DESC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*domain.Project, 0, len(recs))
	for _, rec := range recs {
		projects = append(projects, toDomainProject(rec))
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var rec projectRecord
	err := r.db.WithContext(ctx).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return toDomainProject(rec), nil
}

func (r *projectRepository) AddChoice(ctx context.Context, choice *domain.ProjectChoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&projectRecord{}).Where("id = ?", choice.ProjectID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if count == 0 {
			return domain.ErrProjectNotFound
		}

		rec := projectChoiceRecord{
			ProjectID:            choice.ProjectID,
			CommenterName:        choice.CommenterName,
			CommenterDescription: choice.CommenterDescription,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to insert project choice: %w", err)
		}
		choice.ID = rec.ID
		return nil
	})
}

// Delete removes the project; its choices go with it through the
// ON DELETE CASCADE constraint.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&projectRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func toDomainProject(rec projectRecord) *domain.Project {
	p := &domain.Project{
		ID:                 rec.ID,
		ProjectTitle:       rec.ProjectTitle,
		ProjectDescription: rec.ProjectDescription,
		PubDate:            rec.PubDate,
	}
	for _, c := range rec.Choices {
		p.Choices = append(p.Choices, domain.ProjectChoice{
			ID:                   c.ID,
			ProjectID:            c.ProjectID,
			CommenterName:        c.CommenterName,
			CommenterDescription: c.CommenterDescription,
		})
	}
	return p
}
