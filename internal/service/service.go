package service

import (
	"arealookup/internal/service/area"
	"arealookup/internal/store"
)

//go:generate mockgen -source=./service.go -destination=./service_mock.go -package=service

type Service interface {
	Area() area.AreaSrv
}

func NewService(store store.Store) Service {
	return &service{store: store}
}

type service struct {
	store store.Store
}

func (s *service) Area() area.AreaSrv {
	return area.NewAreaSrv(s.store)
}
