package queue

import (
	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/internal/service"
)

type Queue struct {
	s  service.SyncService
	ac repository.ApiConfigRepository
}

func NewQueue(s service.SyncService, ac repository.ApiConfigRepository) *Queue {
	return &Queue{
		s:  s,
		ac: ac,
	}
}

const TaskTypeSyncPlatform = "sync:platform"

type SyncPlatformPayload struct {
	Platform string `json:"platform"`
	SyncType string `json:"sync_type"`
}
