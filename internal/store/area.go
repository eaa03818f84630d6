package store

import (
	"context"

	"arealookup/internal/model"
)

//go:generate mockgen -source=./area.go -destination=./area_mock.go -package=store

// AreaStore is read only, the area tree is maintained outside the service
type AreaStore interface {
	// ListByPid returns the children of pid in store order, never nil
	ListByPid(ctx context.Context, pid int) ([]*model.Area, error)
}
