package mysql

import (
	"context"

	"github.com/pkg/errors"

	"arealookup/internal/code"
	"arealookup/internal/model"
	"arealookup/pkg/storage"
)

func newArea(db *storage.DB) *area {
	return &area{
		DB: db,
	}
}

type area struct {
	*storage.DB
}

func (a area) ListByPid(ctx context.Context, pid int) ([]*model.Area, error) {
	query, cancel := a.With(ctx)
	defer cancel()
	objs := make([]*model.Area, 0)
	// no ORDER BY, children keep the order of the store
	if err := query.Where("pid = ?", pid).Find(&objs).Error; err != nil {
		return nil, errors.WithStack(code.ErrQueryArea.WithResult(err.Error()))
	}
	return objs, nil
}
