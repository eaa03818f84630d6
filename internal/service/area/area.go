package area

import (
	"context"

	"go.uber.org/zap"

	"arealookup/internal/model"
	"arealookup/internal/store"
	"arealookup/pkg/logger"
)

//go:generate mockgen -source=./area.go -destination=./area_mock.go -package=area

type AreaSrv interface {
	// Roots lists the top level areas
	Roots(ctx context.Context) ([]*model.Area, error)
	// ListByPid lists the direct children of pid
	ListByPid(ctx context.Context, pid int) ([]*model.Area, error)
}

func NewAreaSrv(store store.Store) AreaSrv {
	return areaSrv{
		store: store,
	}
}

type areaSrv struct {
	store store.Store
}

func (a areaSrv) Roots(ctx context.Context) ([]*model.Area, error) {
	return a.ListByPid(ctx, model.RootPid)
}

func (a areaSrv) ListByPid(ctx context.Context, pid int) ([]*model.Area, error) {
	areas, err := a.store.Area().ListByPid(ctx, pid)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the area list",
			zap.Int("pid", pid), zap.Error(err))
		return nil, err
	}
	return areas, nil
}
