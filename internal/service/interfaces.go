// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/plumbline/plumb/internal/model"
)

// Storage defines the contract for the appraisal persistence layer.
type Storage interface {
	// Appraisal operations
	SaveAppraisal(ctx context.Context, appraisal *model.Appraisal) error
	GetAppraisal(ctx context.Context, id string) (*model.Appraisal, error)
	ListAppraisals(ctx context.Context) ([]model.Appraisal, error)
	DeleteAppraisal(ctx context.Context, id string) error

	// Comparable operations
	RemoveComparable(ctx context.Context, appraisalID, compID string) error

	// Conclusion operations
	SaveConclusion(ctx context.Context, appraisalID string, conclusion *model.Conclusion) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
