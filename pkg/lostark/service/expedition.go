package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/lostark"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/latehour/loahelper/pkg/metrics"
)

// ProfileFetcher supplies the armory profile for a main character. Degraded
// fetches return zero values; the expedition is emitted either way.
type ProfileFetcher func(characterName string) shared.ArmoryProfile

type ExpeditionService struct {
	service *lostark.Service
	mapper  *shared.ExpeditionMapper
	logger  logging.Logger
}

var _ lostark.ExpeditionServiceInterface = (*ExpeditionService)(nil)

func NewExpeditionService(s *lostark.Service) lostark.ExpeditionServiceInterface {
	return &ExpeditionService{
		service: s,
		mapper:  shared.NewExpeditionMapper(),
		logger:  logging.GetGlobalLoggerFactory().CreateLogger("expedition_service"),
	}
}

// Dispatch routes a typed command request to the matching operation.
func (es *ExpeditionService) Dispatch(req shared.CommandRequest) (*shared.ExpeditionSyncResult, error) {
	switch req.Kind {
	case shared.CommandSearch:
		return es.SyncExpedition(req.User, req.CharacterName, false)
	case shared.CommandRegister:
		return es.SyncExpedition(req.User, req.CharacterName, true)
	case shared.CommandListSaved:
		return es.GetSavedExpeditions(req.User.DiscordID)
	default:
		return nil, fmt.Errorf("unknown command kind %d", req.Kind)
	}
}

// SyncExpedition fetches the sibling roster for a character, assembles one
// expedition per server, and, when register is true, replaces the user's
// stored expeditions with the result. A search never touches the store.
func (es *ExpeditionService) SyncExpedition(user shared.DiscordUser, characterName string, register bool) (*shared.ExpeditionSyncResult, error) {
	es.logger.Info("Fetching expedition info", map[string]interface{}{
		"character": characterName,
		"user_id":   user.DiscordID,
		"register":  register,
	})

	siblings, err := es.service.RosterClient.GetSiblings(characterName)
	if err != nil {
		es.logger.Warn("Sibling fetch failed", map[string]interface{}{
			"character": characterName,
			"error":     err.Error(),
		})
		return nil, err
	}

	expeditions, err := BuildExpeditions(siblings, es.service.RosterClient.GetArmoryProfile)
	if err != nil {
		es.logger.Error("Failed to process expedition data", err, map[string]interface{}{
			"character": characterName,
		})
		return nil, err
	}

	if register && len(expeditions) > 0 {
		dbUser := es.mapper.UserToDatabase(user)
		dbExpeditions := es.mapper.ToDatabase(expeditions)
		if err := es.service.ExpeditionRepo.UpsertExpeditions(dbUser, dbExpeditions); err != nil {
			metrics.ExpeditionUpserts.WithLabelValues("error").Inc()
			es.logger.Error("Failed to store expeditions", err, map[string]interface{}{
				"character": characterName,
				"user_id":   user.DiscordID,
			})
			return nil, fmt.Errorf("%w: %v", shared.ErrStoreFailure, err)
		}
		metrics.ExpeditionUpserts.WithLabelValues("ok").Inc()
	}

	es.logger.Info("Expedition sync complete", map[string]interface{}{
		"character":   characterName,
		"expeditions": len(expeditions),
		"registered":  register,
	})

	return &shared.ExpeditionSyncResult{
		Message:     fmt.Sprintf("**%s**의 원정대 정보를 불러왔습니다.", characterName),
		Expeditions: expeditions,
		Registered:  register,
	}, nil
}

// GetSavedExpeditions reads a user's stored expeditions, without touching the
// remote API.
func (es *ExpeditionService) GetSavedExpeditions(discordID string) (*shared.ExpeditionSyncResult, error) {
	dbExpeditions, err := es.service.ExpeditionRepo.GetExpeditionsByDiscordID(discordID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreFailure, err)
	}

	expeditions := es.mapper.ToShared(dbExpeditions)
	if len(expeditions) == 0 {
		return &shared.ExpeditionSyncResult{Message: shared.MsgNoSaved}, nil
	}

	return &shared.ExpeditionSyncResult{
		Message:     "저장된 원정대 정보 조회 완료",
		Expeditions: expeditions,
	}, nil
}

// BuildExpeditions groups sibling characters by server (first-seen order),
// designates the highest-item-level character of each group as main, and
// enriches each group with the main character's armory profile. An unparsable
// item level aborts the whole build; there is no partial success.
func BuildExpeditions(siblings []shared.SiblingCharacter, fetchProfile ProfileFetcher) ([]shared.Expedition, error) {
	serverOrder := make([]string, 0)
	groups := make(map[string][]shared.Character)

	for _, raw := range siblings {
		itemLevel, err := ParseItemLevel(raw.ItemAvgLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: item level %q for %s", shared.ErrMalformedData, raw.ItemAvgLevel, raw.CharacterName)
		}

		if _, seen := groups[raw.ServerName]; !seen {
			serverOrder = append(serverOrder, raw.ServerName)
		}
		groups[raw.ServerName] = append(groups[raw.ServerName], shared.Character{
			CharacterName:  raw.CharacterName,
			CharacterClass: raw.CharacterClassName,
			ItemLevel:      itemLevel,
			ServerName:     raw.ServerName,
		})
	}

	expeditions := make([]shared.Expedition, 0, len(serverOrder))
	for _, server := range serverOrder {
		characters := groups[server]

		// Stable sort keeps original order among equal item levels, so ties
		// resolve to the first-encountered character.
		sort.SliceStable(characters, func(i, j int) bool {
			return characters[i].ItemLevel > characters[j].ItemLevel
		})
		characters[0].MainCharacter = true

		profile := fetchProfile(characters[0].CharacterName)

		expeditions = append(expeditions, shared.Expedition{
			ServerName:      server,
			ExpeditionLevel: profile.ExpeditionLevel,
			CharacterImage:  profile.CharacterImage,
			Characters:      characters,
		})
	}

	return expeditions, nil
}

// ParseItemLevel normalizes an item level string like "1,650.50" to the
// truncated integer 1650.
func ParseItemLevel(raw string) (int, error) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}
