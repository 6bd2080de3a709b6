package lostark

import (
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/latehour/loahelper/pkg/lostark/shared"
)

// RosterClientInterface is the remote roster API surface the services need
type RosterClientInterface interface {
	GetSiblings(characterName string) ([]shared.SiblingCharacter, error)
	GetArmoryProfile(characterName string) shared.ArmoryProfile
}

// Service represents the main service that holds all dependencies
type Service struct {
	ExpeditionRepo *repository.ExpeditionRepository
	RosterClient   RosterClientInterface
}

// ExpeditionServiceInterface defines the interface for expedition operations
type ExpeditionServiceInterface interface {
	Dispatch(req shared.CommandRequest) (*shared.ExpeditionSyncResult, error)
	SyncExpedition(user shared.DiscordUser, characterName string, register bool) (*shared.ExpeditionSyncResult, error)
	GetSavedExpeditions(discordID string) (*shared.ExpeditionSyncResult, error)
}

// NewService creates a new Service instance with all dependencies
func NewService(expeditionRepo *repository.ExpeditionRepository, rosterClient RosterClientInterface) *Service {
	return &Service{
		ExpeditionRepo: expeditionRepo,
		RosterClient:   rosterClient,
	}
}
