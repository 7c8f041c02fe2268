package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "rms/internal/errors"
	"rms/internal/models"
)

// aiToolService handles AI tool catalog business logic.
type aiToolService struct {
	db *gorm.DB
}

// NewAIToolService creates a new AIToolServicer.
func NewAIToolService(db *gorm.DB) AIToolServicer {
	return &aiToolService{db: db}
}

// GetAllTools returns every tool in the catalog, most recently created first.
func (s *aiToolService) GetAllTools() ([]models.AITool, error) {
	// Initialized so an empty catalog serializes as [] rather than null.
	tools := []models.AITool{}
	if err := s.db.Order("created_at DESC").Find(&tools).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tools, nil
}

// GetToolByID returns a single tool by id.
func (s *aiToolService) GetToolByID(id string) (*models.AITool, error) {
	var tool models.AITool
	if err := s.db.First(&tool, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAIToolNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tool, nil
}

// CreateTool adds a tool to the catalog. Name and price are trimmed; both
// must be non-empty after trimming.
func (s *aiToolService) CreateTool(name, monthlyPrice string) (*models.AITool, error) {
	name = strings.TrimSpace(name)
	monthlyPrice = strings.TrimSpace(monthlyPrice)
	if name == "" || monthlyPrice == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name and monthly price are required")
	}

	tool := &models.AITool{
		Name:         name,
		MonthlyPrice: monthlyPrice,
	}
	if err := s.db.Create(tool).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tool, nil
}

// UpdateTool updates only the supplied fields of an existing tool. A no-op
// update returns the current record unchanged.
func (s *aiToolService) UpdateTool(id, name, monthlyPrice string) (*models.AITool, error) {
	tool, err := s.GetToolByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if v := strings.TrimSpace(name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(monthlyPrice); v != "" {
		updates["monthly_price"] = v
	}

	if len(updates) > 0 {
		if err := s.db.Model(tool).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return tool, nil
}

// DeleteTool removes a tool from the catalog. Existing allocations keep
// their snapshot of the tool's name and price and are left untouched.
func (s *aiToolService) DeleteTool(id string) error {
	res := s.db.Delete(&models.AITool{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAIToolNotFound
	}
	return nil
}
